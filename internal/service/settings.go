package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

type SettingsService interface {
	// Get never fails for a missing row: an account without settings has every flag off.
	Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error)
	Update(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error)
}

type settingsService struct {
	settings store.SettingsStore
}

func NewSettingsService(settings store.SettingsStore) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error) {
	return LoadSettings(ctx, s.settings, userID)
}

func (s *settingsService) Update(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error) {
	settings, err := s.settings.Upsert(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("upserting settings: %w", err)
	}

	slog.InfoContext(ctx, "auto-reply settings updated",
		"user_id", userID,
		"comments_enabled", settings.AutoReplyCommentsEnabled,
		"dms_enabled", settings.AutoReplyDMsEnabled,
		"ai_suggestions_enabled", settings.AISuggestionsEnabled)

	return settings, nil
}

// LoadSettings reads settings through st, defaulting every flag to false.
func LoadSettings(ctx context.Context, st store.SettingsStore, userID int64) (*model.AutoReplySettings, error) {
	settings, err := st.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &model.AutoReplySettings{UserID: userID}, nil
		}
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return settings, nil
}
