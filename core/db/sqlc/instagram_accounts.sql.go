// Queries for core/db/queries/instagram_accounts.sql.

package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const deleteInstagramAccountByUser = `-- name: DeleteInstagramAccountByUser :execrows
DELETE FROM instagram_accounts WHERE user_id = $1
`

func (q *Queries) DeleteInstagramAccountByUser(ctx context.Context, userID int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteInstagramAccountByUser, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getInstagramAccountByIgUserID = `-- name: GetInstagramAccountByIgUserID :one
SELECT id, user_id, ig_user_id, username, access_token, token_expires_at, created_at, updated_at FROM instagram_accounts WHERE ig_user_id = $1
`

func (q *Queries) GetInstagramAccountByIgUserID(ctx context.Context, igUserID string) (InstagramAccount, error) {
	row := q.db.QueryRow(ctx, getInstagramAccountByIgUserID, igUserID)
	var i InstagramAccount
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.IgUserID,
		&i.Username,
		&i.AccessToken,
		&i.TokenExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getInstagramAccountByUser = `-- name: GetInstagramAccountByUser :one
SELECT id, user_id, ig_user_id, username, access_token, token_expires_at, created_at, updated_at FROM instagram_accounts WHERE user_id = $1
`

func (q *Queries) GetInstagramAccountByUser(ctx context.Context, userID int64) (InstagramAccount, error) {
	row := q.db.QueryRow(ctx, getInstagramAccountByUser, userID)
	var i InstagramAccount
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.IgUserID,
		&i.Username,
		&i.AccessToken,
		&i.TokenExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertInstagramAccount = `-- name: UpsertInstagramAccount :one
INSERT INTO instagram_accounts (id, user_id, ig_user_id, username, access_token, token_expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE
SET ig_user_id = EXCLUDED.ig_user_id,
    username = EXCLUDED.username,
    access_token = EXCLUDED.access_token,
    token_expires_at = EXCLUDED.token_expires_at,
    updated_at = now()
RETURNING id, user_id, ig_user_id, username, access_token, token_expires_at, created_at, updated_at
`

type UpsertInstagramAccountParams struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	IgUserID       string             `json:"ig_user_id"`
	Username       string             `json:"username"`
	AccessToken    string             `json:"access_token"`
	TokenExpiresAt pgtype.Timestamptz `json:"token_expires_at"`
}

func (q *Queries) UpsertInstagramAccount(ctx context.Context, arg UpsertInstagramAccountParams) (InstagramAccount, error) {
	row := q.db.QueryRow(ctx, upsertInstagramAccount,
		arg.ID,
		arg.UserID,
		arg.IgUserID,
		arg.Username,
		arg.AccessToken,
		arg.TokenExpiresAt,
	)
	var i InstagramAccount
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.IgUserID,
		&i.Username,
		&i.AccessToken,
		&i.TokenExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
