// Queries for core/db/queries/auto_reply_settings.sql.

package sqlc

import (
	"context"
)

const getAutoReplySettings = `-- name: GetAutoReplySettings :one
SELECT user_id, auto_reply_comments_enabled, auto_reply_dms_enabled, ai_suggestions_enabled, updated_at FROM auto_reply_settings WHERE user_id = $1
`

func (q *Queries) GetAutoReplySettings(ctx context.Context, userID int64) (AutoReplySetting, error) {
	row := q.db.QueryRow(ctx, getAutoReplySettings, userID)
	var i AutoReplySetting
	err := row.Scan(
		&i.UserID,
		&i.AutoReplyCommentsEnabled,
		&i.AutoReplyDmsEnabled,
		&i.AiSuggestionsEnabled,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertAutoReplySettings = `-- name: UpsertAutoReplySettings :one
INSERT INTO auto_reply_settings (user_id, auto_reply_comments_enabled, auto_reply_dms_enabled, ai_suggestions_enabled)
VALUES (
    $1,
    COALESCE($2::boolean, false),
    COALESCE($3::boolean, false),
    COALESCE($4::boolean, false)
)
ON CONFLICT (user_id) DO UPDATE
SET auto_reply_comments_enabled = COALESCE($2::boolean, auto_reply_settings.auto_reply_comments_enabled),
    auto_reply_dms_enabled      = COALESCE($3::boolean, auto_reply_settings.auto_reply_dms_enabled),
    ai_suggestions_enabled      = COALESCE($4::boolean, auto_reply_settings.ai_suggestions_enabled),
    updated_at                  = now()
RETURNING user_id, auto_reply_comments_enabled, auto_reply_dms_enabled, ai_suggestions_enabled, updated_at
`

type UpsertAutoReplySettingsParams struct {
	UserID               int64 `json:"user_id"`
	CommentsEnabled      *bool `json:"comments_enabled"`
	DmsEnabled           *bool `json:"dms_enabled"`
	AiSuggestionsEnabled *bool `json:"ai_suggestions_enabled"`
}

func (q *Queries) UpsertAutoReplySettings(ctx context.Context, arg UpsertAutoReplySettingsParams) (AutoReplySetting, error) {
	row := q.db.QueryRow(ctx, upsertAutoReplySettings,
		arg.UserID,
		arg.CommentsEnabled,
		arg.DmsEnabled,
		arg.AiSuggestionsEnabled,
	)
	var i AutoReplySetting
	err := row.Scan(
		&i.UserID,
		&i.AutoReplyCommentsEnabled,
		&i.AutoReplyDmsEnabled,
		&i.AiSuggestionsEnabled,
		&i.UpdatedAt,
	)
	return i, err
}
