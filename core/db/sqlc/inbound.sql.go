// Queries for core/db/queries/inbound.sql.

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInstagramComment = `-- name: CreateInstagramComment :one
INSERT INTO instagram_comments (id, user_id, comment_id, media_id, sender_id, sender_username, text, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, comment_id) DO NOTHING
RETURNING id, user_id, comment_id, media_id, sender_id, sender_username, text, received_at, created_at
`

type CreateInstagramCommentParams struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	CommentID      string             `json:"comment_id"`
	MediaID        string             `json:"media_id"`
	SenderID       string             `json:"sender_id"`
	SenderUsername *string            `json:"sender_username"`
	Text           string             `json:"text"`
	ReceivedAt     pgtype.Timestamptz `json:"received_at"`
}

func (q *Queries) CreateInstagramComment(ctx context.Context, arg CreateInstagramCommentParams) (InstagramComment, error) {
	row := q.db.QueryRow(ctx, createInstagramComment,
		arg.ID,
		arg.UserID,
		arg.CommentID,
		arg.MediaID,
		arg.SenderID,
		arg.SenderUsername,
		arg.Text,
		arg.ReceivedAt,
	)
	var i InstagramComment
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CommentID,
		&i.MediaID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}

const createInstagramMessage = `-- name: CreateInstagramMessage :one
INSERT INTO instagram_messages (id, user_id, message_id, conversation_id, sender_id, sender_username, text, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, message_id) DO NOTHING
RETURNING id, user_id, message_id, conversation_id, sender_id, sender_username, text, received_at, created_at
`

type CreateInstagramMessageParams struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	MessageID      string             `json:"message_id"`
	ConversationID string             `json:"conversation_id"`
	SenderID       string             `json:"sender_id"`
	SenderUsername *string            `json:"sender_username"`
	Text           string             `json:"text"`
	ReceivedAt     pgtype.Timestamptz `json:"received_at"`
}

func (q *Queries) CreateInstagramMessage(ctx context.Context, arg CreateInstagramMessageParams) (InstagramMessage, error) {
	row := q.db.QueryRow(ctx, createInstagramMessage,
		arg.ID,
		arg.UserID,
		arg.MessageID,
		arg.ConversationID,
		arg.SenderID,
		arg.SenderUsername,
		arg.Text,
		arg.ReceivedAt,
	)
	var i InstagramMessage
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MessageID,
		&i.ConversationID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInstagramComment = `-- name: GetInstagramComment :one
SELECT id, user_id, comment_id, media_id, sender_id, sender_username, text, received_at, created_at FROM instagram_comments WHERE id = $1 AND user_id = $2
`

type GetInstagramCommentParams struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func (q *Queries) GetInstagramComment(ctx context.Context, arg GetInstagramCommentParams) (InstagramComment, error) {
	row := q.db.QueryRow(ctx, getInstagramComment, arg.ID, arg.UserID)
	var i InstagramComment
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CommentID,
		&i.MediaID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInstagramCommentByPlatformID = `-- name: GetInstagramCommentByPlatformID :one
SELECT id, user_id, comment_id, media_id, sender_id, sender_username, text, received_at, created_at FROM instagram_comments WHERE user_id = $1 AND comment_id = $2
`

type GetInstagramCommentByPlatformIDParams struct {
	UserID    int64  `json:"user_id"`
	CommentID string `json:"comment_id"`
}

func (q *Queries) GetInstagramCommentByPlatformID(ctx context.Context, arg GetInstagramCommentByPlatformIDParams) (InstagramComment, error) {
	row := q.db.QueryRow(ctx, getInstagramCommentByPlatformID, arg.UserID, arg.CommentID)
	var i InstagramComment
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CommentID,
		&i.MediaID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInstagramMessage = `-- name: GetInstagramMessage :one
SELECT id, user_id, message_id, conversation_id, sender_id, sender_username, text, received_at, created_at FROM instagram_messages WHERE id = $1 AND user_id = $2
`

type GetInstagramMessageParams struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func (q *Queries) GetInstagramMessage(ctx context.Context, arg GetInstagramMessageParams) (InstagramMessage, error) {
	row := q.db.QueryRow(ctx, getInstagramMessage, arg.ID, arg.UserID)
	var i InstagramMessage
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MessageID,
		&i.ConversationID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInstagramMessageByPlatformID = `-- name: GetInstagramMessageByPlatformID :one
SELECT id, user_id, message_id, conversation_id, sender_id, sender_username, text, received_at, created_at FROM instagram_messages WHERE user_id = $1 AND message_id = $2
`

type GetInstagramMessageByPlatformIDParams struct {
	UserID    int64  `json:"user_id"`
	MessageID string `json:"message_id"`
}

func (q *Queries) GetInstagramMessageByPlatformID(ctx context.Context, arg GetInstagramMessageByPlatformIDParams) (InstagramMessage, error) {
	row := q.db.QueryRow(ctx, getInstagramMessageByPlatformID, arg.UserID, arg.MessageID)
	var i InstagramMessage
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.MessageID,
		&i.ConversationID,
		&i.SenderID,
		&i.SenderUsername,
		&i.Text,
		&i.ReceivedAt,
		&i.CreatedAt,
	)
	return i, err
}
