package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type AutoReplyLog struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"user_id"`
	QueueItemID *int64             `json:"queue_item_id"`
	MessageType string             `json:"message_type"`
	MessageID   string             `json:"message_id"`
	ReplyText   string             `json:"reply_text"`
	Status      string             `json:"status"`
	Error       *string            `json:"error"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type AutoReplyQueue struct {
	ID               int64              `json:"id"`
	UserID           int64              `json:"user_id"`
	MessageType      string             `json:"message_type"`
	MessageID        string             `json:"message_id"`
	MessageText      string             `json:"message_text"`
	SenderUsername   *string            `json:"sender_username"`
	SenderID         string             `json:"sender_id"`
	ConversationID   *string            `json:"conversation_id"`
	SuggestedReply   string             `json:"suggested_reply"`
	DetectedLanguage string             `json:"detected_language"`
	Status           string             `json:"status"`
	RuleID           *int64             `json:"rule_id"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	RejectedAt       pgtype.Timestamptz `json:"rejected_at"`
	RejectionReason  *string            `json:"rejection_reason"`
}

type AutoReplySetting struct {
	UserID                   int64              `json:"user_id"`
	AutoReplyCommentsEnabled bool               `json:"auto_reply_comments_enabled"`
	AutoReplyDmsEnabled      bool               `json:"auto_reply_dms_enabled"`
	AiSuggestionsEnabled     bool               `json:"ai_suggestions_enabled"`
	UpdatedAt                pgtype.Timestamptz `json:"updated_at"`
}

type AutomationRule struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"user_id"`
	TriggerType string             `json:"trigger_type"`
	TriggerText string             `json:"trigger_text"`
	ReplyText   string             `json:"reply_text"`
	MatchType   string             `json:"match_type"`
	IsActive    bool               `json:"is_active"`
	UsageCount  int32              `json:"usage_count"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type InstagramAccount struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	IgUserID       string             `json:"ig_user_id"`
	Username       string             `json:"username"`
	AccessToken    string             `json:"access_token"`
	TokenExpiresAt pgtype.Timestamptz `json:"token_expires_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type InstagramComment struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	CommentID      string             `json:"comment_id"`
	MediaID        string             `json:"media_id"`
	SenderID       string             `json:"sender_id"`
	SenderUsername *string            `json:"sender_username"`
	Text           string             `json:"text"`
	ReceivedAt     pgtype.Timestamptz `json:"received_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type InstagramMessage struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	MessageID      string             `json:"message_id"`
	ConversationID string             `json:"conversation_id"`
	SenderID       string             `json:"sender_id"`
	SenderUsername *string            `json:"sender_username"`
	Text           string             `json:"text"`
	ReceivedAt     pgtype.Timestamptz `json:"received_at"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type Session struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	ExpiresAt pgtype.Timestamptz `json:"expires_at"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type User struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	AvatarUrl *string            `json:"avatar_url"`
	WorkosID  *string            `json:"workos_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
