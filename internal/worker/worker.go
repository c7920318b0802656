package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/queue"
	"replydesk.app/server/internal/store"
)

// Mirrors service.StoreProvider - defined here to avoid import cycles.
type StoreProvider interface {
	Rules() store.RuleStore
	Queue() store.QueueStore
	Inbound() store.InboundStore
	Settings() store.SettingsStore
}

// Mirrors service.TxRunner - defined here to avoid import cycles.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  Consumer
	txRunner  TxRunner
	processor InboundProcessor
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, txRunner TxRunner, processor InboundProcessor, cfg Config) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Worker{
		consumer:  consumer,
		txRunner:  txRunner,
		processor: processor,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "replydesk.worker"})
	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"stream_message_id", msg.ID,
				"source_id", msg.SourceID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"stream_message_id", msg.ID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage loads the stored item, runs the processor in one transaction and
// acknowledges. Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker.process_inbound",
		trace.WithAttributes(
			attribute.String("stream.message_id", msg.ID),
			attribute.String("inbound.channel", msg.Channel),
			attribute.Int64("inbound.source_id", msg.SourceID),
			attribute.Int("attempt", msg.Attempt),
		))
	defer sc.End()

	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{
		UserID:      &msg.UserID,
		StreamMsgID: &msg.ID,
		Channel:     &msg.Channel,
	})
	if msg.PlatformID != "" {
		ctx = logger.WithLogFields(ctx, logger.LogFields{MessageID: &msg.PlatformID})
	}

	slog.InfoContext(ctx, "processing message",
		"source_id", msg.SourceID,
		"attempt", msg.Attempt)

	start := time.Now()
	var queued *model.QueueItem

	txErr := w.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		item, err := loadInbound(ctx, sp.Inbound(), msg)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Disconnect or account deletion removed the row; nothing to do.
				slog.InfoContext(ctx, "inbound item no longer exists, skipping")
				return nil
			}
			return fmt.Errorf("loading inbound item: %w", err)
		}

		queued, err = w.processor.Process(ctx, item, sp)
		return err
	})

	if txErr != nil {
		sc.RecordError(txErr)
		// Not acked: the caller requeues or dead-letters.
		return fmt.Errorf("transaction failed: %w", txErr)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// The reclaimer will pick it up again; HasPending keeps that harmless.
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	if queued != nil {
		slog.InfoContext(ctx, "reply suggestion queued",
			"queue_item_id", queued.ID,
			"from_rule", queued.RuleID != nil,
			"duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}

func loadInbound(ctx context.Context, inbound store.InboundStore, msg queue.Message) (model.InboundItem, error) {
	switch model.Channel(msg.Channel) {
	case model.ChannelDM:
		m, err := inbound.GetMessage(ctx, msg.SourceID, msg.UserID)
		if err != nil {
			return model.InboundItem{}, err
		}
		return m.Inbound(), nil
	case model.ChannelComment:
		c, err := inbound.GetComment(ctx, msg.SourceID, msg.UserID)
		if err != nil {
			return model.InboundItem{}, err
		}
		return c.Inbound(), nil
	}
	return model.InboundItem{}, fmt.Errorf("unknown channel %q", msg.Channel)
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"stream_message_id", msg.ID,
			"source_id", msg.SourceID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"stream_message_id", msg.ID,
		"source_id", msg.SourceID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
