package model

import "time"

type QueueStatus string

const (
	QueueStatusPending  QueueStatus = "pending"
	QueueStatusApproved QueueStatus = "approved"
	QueueStatusRejected QueueStatus = "rejected"
	QueueStatusSent     QueueStatus = "sent"
)

// Terminal reports whether no further transition is possible.
func (s QueueStatus) Terminal() bool {
	return s == QueueStatusRejected || s == QueueStatusSent
}

type Language string

const (
	LanguageFinnish Language = "fi"
	LanguageEnglish Language = "en"
)

const DefaultRejectionReason = "Rejected by user"

type QueueItem struct {
	ID               int64       `json:"id,string"`
	UserID           int64       `json:"user_id,string"`
	MessageType      Channel     `json:"message_type"`
	MessageID        string      `json:"message_id"`
	MessageText      string      `json:"message_text"`
	SenderUsername   *string     `json:"sender_username"`
	SenderID         string      `json:"sender_id"`
	ConversationID   *string     `json:"conversation_id"`
	SuggestedReply   string      `json:"suggested_reply"`
	DetectedLanguage Language    `json:"detected_language"`
	Status           QueueStatus `json:"status"`
	RuleID           *int64      `json:"rule_id,string,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	RejectedAt       *time.Time  `json:"rejected_at,omitempty"`
	RejectionReason  *string     `json:"rejection_reason,omitempty"`
}
