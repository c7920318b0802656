// Queries for core/db/queries/users.sql.

package sqlc

import (
	"context"
)

const getUser = `-- name: GetUser :one
SELECT id, name, email, avatar_url, workos_id, created_at, updated_at FROM users WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUser, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.AvatarUrl,
		&i.WorkosID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertUserByWorkOSID = `-- name: UpsertUserByWorkOSID :one
INSERT INTO users (id, name, email, avatar_url, workos_id)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (workos_id) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    avatar_url = EXCLUDED.avatar_url,
    updated_at = now()
RETURNING id, name, email, avatar_url, workos_id, created_at, updated_at
`

type UpsertUserByWorkOSIDParams struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarUrl *string `json:"avatar_url"`
	WorkosID  *string `json:"workos_id"`
}

func (q *Queries) UpsertUserByWorkOSID(ctx context.Context, arg UpsertUserByWorkOSIDParams) (User, error) {
	row := q.db.QueryRow(ctx, upsertUserByWorkOSID,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.AvatarUrl,
		arg.WorkosID,
	)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.AvatarUrl,
		&i.WorkosID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
