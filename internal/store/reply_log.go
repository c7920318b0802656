package store

import (
	"context"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type replyLogStore struct {
	queries *sqlc.Queries
}

func newReplyLogStore(queries *sqlc.Queries) ReplyLogStore {
	return &replyLogStore{queries: queries}
}

func (s *replyLogStore) List(ctx context.Context, userID int64, limit int32) ([]model.ReplyLog, error) {
	rows, err := s.queries.ListAutoReplyLogs(ctx, sqlc.ListAutoReplyLogsParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	result := make([]model.ReplyLog, len(rows))
	for i, row := range rows {
		result[i] = model.ReplyLog{
			ID:          row.ID,
			UserID:      row.UserID,
			QueueItemID: row.QueueItemID,
			MessageType: row.MessageType,
			MessageID:   row.MessageID,
			ReplyText:   row.ReplyText,
			Status:      row.Status,
			Error:       row.Error,
			CreatedAt:   row.CreatedAt.Time,
		}
	}
	return result, nil
}
