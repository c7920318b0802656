// Queries for core/db/queries/auto_reply_queue.sql.

package sqlc

import (
	"context"
)

const createQueueItem = `-- name: CreateQueueItem :one
INSERT INTO auto_reply_queue (
    id, user_id, message_type, message_id, message_text, sender_username,
    sender_id, conversation_id, suggested_reply, detected_language, rule_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, user_id, message_type, message_id, message_text, sender_username, sender_id, conversation_id, suggested_reply, detected_language, status, rule_id, created_at, rejected_at, rejection_reason
`

type CreateQueueItemParams struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	MessageType      string  `json:"message_type"`
	MessageID        string  `json:"message_id"`
	MessageText      string  `json:"message_text"`
	SenderUsername   *string `json:"sender_username"`
	SenderID         string  `json:"sender_id"`
	ConversationID   *string `json:"conversation_id"`
	SuggestedReply   string  `json:"suggested_reply"`
	DetectedLanguage string  `json:"detected_language"`
	RuleID           *int64  `json:"rule_id"`
}

func (q *Queries) CreateQueueItem(ctx context.Context, arg CreateQueueItemParams) (AutoReplyQueue, error) {
	row := q.db.QueryRow(ctx, createQueueItem,
		arg.ID,
		arg.UserID,
		arg.MessageType,
		arg.MessageID,
		arg.MessageText,
		arg.SenderUsername,
		arg.SenderID,
		arg.ConversationID,
		arg.SuggestedReply,
		arg.DetectedLanguage,
		arg.RuleID,
	)
	var i AutoReplyQueue
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MessageType,
		&i.MessageID,
		&i.MessageText,
		&i.SenderUsername,
		&i.SenderID,
		&i.ConversationID,
		&i.SuggestedReply,
		&i.DetectedLanguage,
		&i.Status,
		&i.RuleID,
		&i.CreatedAt,
		&i.RejectedAt,
		&i.RejectionReason,
	)
	return i, err
}

const hasPendingQueueItem = `-- name: HasPendingQueueItem :one
SELECT EXISTS (
    SELECT 1 FROM auto_reply_queue
    WHERE user_id = $1 AND message_id = $2 AND status = 'pending'
)
`

type HasPendingQueueItemParams struct {
	UserID    int64  `json:"user_id"`
	MessageID string `json:"message_id"`
}

func (q *Queries) HasPendingQueueItem(ctx context.Context, arg HasPendingQueueItemParams) (bool, error) {
	row := q.db.QueryRow(ctx, hasPendingQueueItem, arg.UserID, arg.MessageID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listPendingQueueItems = `-- name: ListPendingQueueItems :many
SELECT id, user_id, message_type, message_id, message_text, sender_username, sender_id, conversation_id, suggested_reply, detected_language, status, rule_id, created_at, rejected_at, rejection_reason FROM auto_reply_queue
WHERE user_id = $1 AND status = 'pending'
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListPendingQueueItemsParams struct {
	UserID int64 `json:"user_id"`
	Limit  int32 `json:"limit"`
}

func (q *Queries) ListPendingQueueItems(ctx context.Context, arg ListPendingQueueItemsParams) ([]AutoReplyQueue, error) {
	rows, err := q.db.Query(ctx, listPendingQueueItems, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AutoReplyQueue
	for rows.Next() {
		var i AutoReplyQueue
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.MessageType,
			&i.MessageID,
			&i.MessageText,
			&i.SenderUsername,
			&i.SenderID,
			&i.ConversationID,
			&i.SuggestedReply,
			&i.DetectedLanguage,
			&i.Status,
			&i.RuleID,
			&i.CreatedAt,
			&i.RejectedAt,
			&i.RejectionReason,
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

const rejectQueueItem = `-- name: RejectQueueItem :one
UPDATE auto_reply_queue
SET status = 'rejected',
    rejected_at = now(),
    rejection_reason = $3
WHERE id = $1 AND user_id = $2 AND status = 'pending'
RETURNING id, user_id, message_type, message_id, message_text, sender_username, sender_id, conversation_id, suggested_reply, detected_language, status, rule_id, created_at, rejected_at, rejection_reason
`

type RejectQueueItemParams struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	RejectionReason *string `json:"rejection_reason"`
}

func (q *Queries) RejectQueueItem(ctx context.Context, arg RejectQueueItemParams) (AutoReplyQueue, error) {
	row := q.db.QueryRow(ctx, rejectQueueItem, arg.ID, arg.UserID, arg.RejectionReason)
	var i AutoReplyQueue
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MessageType,
		&i.MessageID,
		&i.MessageText,
		&i.SenderUsername,
		&i.SenderID,
		&i.ConversationID,
		&i.SuggestedReply,
		&i.DetectedLanguage,
		&i.Status,
		&i.RuleID,
		&i.CreatedAt,
		&i.RejectedAt,
		&i.RejectionReason,
	)
	return i, err
}
