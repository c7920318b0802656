package store

import (
	"context"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type settingsStore struct {
	queries *sqlc.Queries
}

func newSettingsStore(queries *sqlc.Queries) SettingsStore {
	return &settingsStore{queries: queries}
}

func (s *settingsStore) Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error) {
	row, err := s.queries.GetAutoReplySettings(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toSettingsModel(row), nil
}

func (s *settingsStore) Upsert(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error) {
	row, err := s.queries.UpsertAutoReplySettings(ctx, sqlc.UpsertAutoReplySettingsParams{
		UserID:               userID,
		CommentsEnabled:      upd.AutoReplyCommentsEnabled,
		DmsEnabled:           upd.AutoReplyDMsEnabled,
		AiSuggestionsEnabled: upd.AISuggestionsEnabled,
	})
	if err != nil {
		return nil, err
	}
	return toSettingsModel(row), nil
}

func toSettingsModel(row sqlc.AutoReplySetting) *model.AutoReplySettings {
	return &model.AutoReplySettings{
		UserID:                   row.UserID,
		AutoReplyCommentsEnabled: row.AutoReplyCommentsEnabled,
		AutoReplyDMsEnabled:      row.AutoReplyDmsEnabled,
		AISuggestionsEnabled:     row.AiSuggestionsEnabled,
		UpdatedAt:                row.UpdatedAt.Time,
	}
}
