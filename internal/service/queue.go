package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/automation"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

var (
	ErrQueueItemNotFound = errors.New("queue item not found")
	ErrSourceNotFound    = errors.New("source message not found")
)

const (
	PendingQueueLimit = 50
	DefaultLogsLimit  = 50
	MaxLogsLimit      = 200
)

type EnqueueParams struct {
	UserID     int64
	ItemType   model.Channel
	SourceID   int64
	Suggestion string
}

type QueueService interface {
	// Enqueue stores a pending suggestion for a DM or comment the user owns.
	// Enqueueing the same source twice creates two items.
	Enqueue(ctx context.Context, params EnqueueParams) (*model.QueueItem, error)
	ListPending(ctx context.Context, userID int64) ([]model.QueueItem, error)
	Reject(ctx context.Context, id, userID int64, reason *string) (*model.QueueItem, error)
	Logs(ctx context.Context, userID int64, limit int) ([]model.ReplyLog, error)
}

type queueService struct {
	queue   store.QueueStore
	inbound store.InboundStore
	logs    store.ReplyLogStore
}

func NewQueueService(queue store.QueueStore, inbound store.InboundStore, logs store.ReplyLogStore) QueueService {
	return &queueService{queue: queue, inbound: inbound, logs: logs}
}

func (s *queueService) Enqueue(ctx context.Context, params EnqueueParams) (*model.QueueItem, error) {
	var errs []string
	if !params.ItemType.Valid() {
		errs = append(errs, "item_type must be one of dm, comment")
	}
	if params.SourceID <= 0 {
		errs = append(errs, "source_id is required")
	}
	if strings.TrimSpace(params.Suggestion) == "" {
		errs = append(errs, "suggestion must not be empty")
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	src, err := s.loadSource(ctx, params.UserID, params.ItemType, params.SourceID)
	if err != nil {
		return nil, err
	}

	item := automation.NewQueueItem(id.New(), src, params.Suggestion, nil)
	if err := s.queue.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("creating queue item: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		QueueItemID: &item.ID,
		MessageID:   &item.MessageID,
		Channel:     logger.Ptr(string(item.MessageType)),
	})
	slog.InfoContext(ctx, "reply suggestion queued", "language", item.DetectedLanguage)

	return &item, nil
}

func (s *queueService) loadSource(ctx context.Context, userID int64, ch model.Channel, sourceID int64) (model.InboundItem, error) {
	switch ch {
	case model.ChannelDM:
		msg, err := s.inbound.GetMessage(ctx, sourceID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return model.InboundItem{}, ErrSourceNotFound
			}
			return model.InboundItem{}, fmt.Errorf("getting message: %w", err)
		}
		return msg.Inbound(), nil
	default:
		comment, err := s.inbound.GetComment(ctx, sourceID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return model.InboundItem{}, ErrSourceNotFound
			}
			return model.InboundItem{}, fmt.Errorf("getting comment: %w", err)
		}
		return comment.Inbound(), nil
	}
}

func (s *queueService) ListPending(ctx context.Context, userID int64) ([]model.QueueItem, error) {
	items, err := s.queue.ListPending(ctx, userID, PendingQueueLimit)
	if err != nil {
		return nil, fmt.Errorf("listing pending queue: %w", err)
	}
	return items, nil
}

func (s *queueService) Reject(ctx context.Context, id, userID int64, reason *string) (*model.QueueItem, error) {
	text := model.DefaultRejectionReason
	if reason != nil && strings.TrimSpace(*reason) != "" {
		text = strings.TrimSpace(*reason)
	}

	item, err := s.queue.Reject(ctx, id, userID, text)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrQueueItemNotFound
		}
		return nil, fmt.Errorf("rejecting queue item: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{QueueItemID: &item.ID})
	slog.InfoContext(ctx, "queue item rejected")

	return item, nil
}

func (s *queueService) Logs(ctx context.Context, userID int64, limit int) ([]model.ReplyLog, error) {
	logs, err := s.logs.List(ctx, userID, int32(ClampLogsLimit(limit)))
	if err != nil {
		return nil, fmt.Errorf("listing reply logs: %w", err)
	}
	return logs, nil
}

// ClampLogsLimit maps 0 to the default and everything else into [1, MaxLogsLimit].
func ClampLogsLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultLogsLimit
	case limit < 1:
		return 1
	case limit > MaxLogsLimit:
		return MaxLogsLimit
	}
	return limit
}
