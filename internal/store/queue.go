package store

import (
	"context"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type queueStore struct {
	queries *sqlc.Queries
}

func newQueueStore(queries *sqlc.Queries) QueueStore {
	return &queueStore{queries: queries}
}

func (s *queueStore) Create(ctx context.Context, item *model.QueueItem) error {
	row, err := s.queries.CreateQueueItem(ctx, sqlc.CreateQueueItemParams{
		ID:               item.ID,
		UserID:           item.UserID,
		MessageType:      string(item.MessageType),
		MessageID:        item.MessageID,
		MessageText:      item.MessageText,
		SenderUsername:   item.SenderUsername,
		SenderID:         item.SenderID,
		ConversationID:   item.ConversationID,
		SuggestedReply:   item.SuggestedReply,
		DetectedLanguage: string(item.DetectedLanguage),
		RuleID:           item.RuleID,
	})
	if err != nil {
		return err
	}
	*item = *toQueueItemModel(row)
	return nil
}

func (s *queueStore) ListPending(ctx context.Context, userID int64, limit int32) ([]model.QueueItem, error) {
	rows, err := s.queries.ListPendingQueueItems(ctx, sqlc.ListPendingQueueItemsParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.QueueItem, len(rows))
	for i, row := range rows {
		result[i] = *toQueueItemModel(row)
	}
	return result, nil
}

func (s *queueStore) Reject(ctx context.Context, id, userID int64, reason string) (*model.QueueItem, error) {
	row, err := s.queries.RejectQueueItem(ctx, sqlc.RejectQueueItemParams{
		ID:              id,
		UserID:          userID,
		RejectionReason: &reason,
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toQueueItemModel(row), nil
}

func (s *queueStore) HasPending(ctx context.Context, userID int64, messageID string) (bool, error) {
	return s.queries.HasPendingQueueItem(ctx, sqlc.HasPendingQueueItemParams{
		UserID:    userID,
		MessageID: messageID,
	})
}

func toQueueItemModel(row sqlc.AutoReplyQueue) *model.QueueItem {
	return &model.QueueItem{
		ID:               row.ID,
		UserID:           row.UserID,
		MessageType:      model.Channel(row.MessageType),
		MessageID:        row.MessageID,
		MessageText:      row.MessageText,
		SenderUsername:   row.SenderUsername,
		SenderID:         row.SenderID,
		ConversationID:   row.ConversationID,
		SuggestedReply:   row.SuggestedReply,
		DetectedLanguage: model.Language(row.DetectedLanguage),
		Status:           model.QueueStatus(row.Status),
		RuleID:           row.RuleID,
		CreatedAt:        row.CreatedAt.Time,
		RejectedAt:       pgTimestamptzToTime(row.RejectedAt),
		RejectionReason:  row.RejectionReason,
	}
}
