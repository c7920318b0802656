package model

import "time"

type AutoReplySettings struct {
	UserID                   int64     `json:"user_id,string"`
	AutoReplyCommentsEnabled bool      `json:"auto_reply_comments_enabled"`
	AutoReplyDMsEnabled      bool      `json:"auto_reply_dms_enabled"`
	AISuggestionsEnabled     bool      `json:"ai_suggestions_enabled"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// Allows reports whether automation is switched on for ch.
func (s AutoReplySettings) Allows(ch Channel) bool {
	switch ch {
	case ChannelDM:
		return s.AutoReplyDMsEnabled
	case ChannelComment:
		return s.AutoReplyCommentsEnabled
	}
	return false
}

// SettingsUpdate carries the flags a caller wants changed. Nil keeps the stored value.
type SettingsUpdate struct {
	AutoReplyCommentsEnabled *bool
	AutoReplyDMsEnabled      *bool
	AISuggestionsEnabled     *bool
}
