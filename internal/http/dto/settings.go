package dto

import (
	"encoding/json"

	"replydesk.app/server/internal/model"
)

type UpdateSettingsRequest struct {
	UserID                   json.Number `json:"user_id"`
	AutoReplyCommentsEnabled *bool       `json:"auto_reply_comments_enabled"`
	AutoReplyDMsEnabled      *bool       `json:"auto_reply_dms_enabled"`
	AISuggestionsEnabled     *bool       `json:"ai_suggestions_enabled"`
}

func (r UpdateSettingsRequest) Update() model.SettingsUpdate {
	return model.SettingsUpdate{
		AutoReplyCommentsEnabled: r.AutoReplyCommentsEnabled,
		AutoReplyDMsEnabled:      r.AutoReplyDMsEnabled,
		AISuggestionsEnabled:     r.AISuggestionsEnabled,
	}
}

type SettingsResponse struct {
	Settings model.AutoReplySettings `json:"settings"`
}
