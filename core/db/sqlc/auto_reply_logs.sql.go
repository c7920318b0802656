// Queries for core/db/queries/auto_reply_logs.sql.

package sqlc

import (
	"context"
)

const listAutoReplyLogs = `-- name: ListAutoReplyLogs :many
SELECT id, user_id, queue_item_id, message_type, message_id, reply_text, status, error, created_at FROM auto_reply_logs
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListAutoReplyLogsParams struct {
	UserID int64 `json:"user_id"`
	Limit  int32 `json:"limit"`
}

func (q *Queries) ListAutoReplyLogs(ctx context.Context, arg ListAutoReplyLogsParams) ([]AutoReplyLog, error) {
	rows, err := q.db.Query(ctx, listAutoReplyLogs, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AutoReplyLog
	for rows.Next() {
		var i AutoReplyLog
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.QueueItemID,
			&i.MessageType,
			&i.MessageID,
			&i.ReplyText,
			&i.Status,
			&i.Error,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
