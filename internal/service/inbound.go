package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/queue"
	"replydesk.app/server/internal/store"
)

type InboundMessage struct {
	UserID         int64
	MessageID      string
	ConversationID string
	SenderID       string
	SenderUsername *string
	Text           string
	ReceivedAt     time.Time
}

type InboundComment struct {
	UserID         int64
	CommentID      string
	MediaID        string
	SenderID       string
	SenderUsername *string
	Text           string
	ReceivedAt     time.Time
}

// InboundService stores what the webhook receives and hands it to the worker.
// A redelivered webhook for an already stored item is a no-op.
type InboundService interface {
	IngestMessage(ctx context.Context, in InboundMessage, traceID *string) (*model.InstagramMessage, error)
	IngestComment(ctx context.Context, in InboundComment, traceID *string) (*model.InstagramComment, error)
}

type inboundService struct {
	inbound  store.InboundStore
	producer queue.Producer
}

func NewInboundService(inbound store.InboundStore, producer queue.Producer) InboundService {
	return &inboundService{inbound: inbound, producer: producer}
}

func (s *inboundService) IngestMessage(ctx context.Context, in InboundMessage, traceID *string) (*model.InstagramMessage, error) {
	msg := &model.InstagramMessage{
		ID:             id.New(),
		UserID:         in.UserID,
		MessageID:      in.MessageID,
		ConversationID: in.ConversationID,
		SenderID:       in.SenderID,
		SenderUsername: in.SenderUsername,
		Text:           in.Text,
		ReceivedAt:     in.ReceivedAt,
	}

	created, err := s.inbound.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("saving message: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    &msg.UserID,
		MessageID: &msg.MessageID,
		Channel:   logger.Ptr(string(model.ChannelDM)),
	})

	// A redelivery may follow a failed publish, so duplicates are published again.
	// The worker skips items that already have a pending suggestion.
	if !created {
		slog.DebugContext(ctx, "duplicate message, republishing")
	}

	if err := s.publish(ctx, msg.Inbound(), traceID); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *inboundService) IngestComment(ctx context.Context, in InboundComment, traceID *string) (*model.InstagramComment, error) {
	comment := &model.InstagramComment{
		ID:             id.New(),
		UserID:         in.UserID,
		CommentID:      in.CommentID,
		MediaID:        in.MediaID,
		SenderID:       in.SenderID,
		SenderUsername: in.SenderUsername,
		Text:           in.Text,
		ReceivedAt:     in.ReceivedAt,
	}

	created, err := s.inbound.SaveComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("saving comment: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    &comment.UserID,
		MessageID: &comment.CommentID,
		Channel:   logger.Ptr(string(model.ChannelComment)),
	})

	// A redelivery may follow a failed publish, so duplicates are published again.
	// The worker skips items that already have a pending suggestion.
	if !created {
		slog.DebugContext(ctx, "duplicate comment, republishing")
	}

	if err := s.publish(ctx, comment.Inbound(), traceID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *inboundService) publish(ctx context.Context, item model.InboundItem, traceID *string) error {
	task := queue.InboundTask{
		UserID:     item.UserID,
		Channel:    string(item.Channel),
		SourceID:   item.ID,
		PlatformID: item.PlatformID,
		TraceID:    traceID,
		Attempt:    1,
	}
	if err := s.producer.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("publishing inbound task: %w", err)
	}

	slog.InfoContext(ctx, "inbound item stored and published",
		"source_id", item.ID,
		"text", logger.Truncate(item.Text, 80))
	return nil
}
