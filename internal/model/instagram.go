package model

import "time"

type InstagramAccount struct {
	ID             int64      `json:"id,string"`
	UserID         int64      `json:"user_id,string"`
	IGUserID       string     `json:"ig_user_id"`
	Username       string     `json:"username"`
	AccessToken    string     `json:"-"` // never expose tokens in API
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// InstagramMessage is a stored inbound DM.
type InstagramMessage struct {
	ID             int64     `json:"id,string"`
	UserID         int64     `json:"user_id,string"`
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderUsername *string   `json:"sender_username,omitempty"`
	Text           string    `json:"text"`
	ReceivedAt     time.Time `json:"received_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// InstagramComment is a stored inbound comment on one of the account's posts.
type InstagramComment struct {
	ID             int64     `json:"id,string"`
	UserID         int64     `json:"user_id,string"`
	CommentID      string    `json:"comment_id"`
	MediaID        string    `json:"media_id"`
	SenderID       string    `json:"sender_id"`
	SenderUsername *string   `json:"sender_username,omitempty"`
	Text           string    `json:"text"`
	ReceivedAt     time.Time `json:"received_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// InboundItem is the channel-neutral view of a DM or comment that the queue and
// the matcher work on.
type InboundItem struct {
	ID             int64
	UserID         int64
	Channel        Channel
	PlatformID     string
	Text           string
	SenderID       string
	SenderUsername *string
	ConversationID *string
}

func (m InstagramMessage) Inbound() InboundItem {
	conv := m.ConversationID
	return InboundItem{
		ID:             m.ID,
		UserID:         m.UserID,
		Channel:        ChannelDM,
		PlatformID:     m.MessageID,
		Text:           m.Text,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		ConversationID: &conv,
	}
}

func (c InstagramComment) Inbound() InboundItem {
	return InboundItem{
		ID:             c.ID,
		UserID:         c.UserID,
		Channel:        ChannelComment,
		PlatformID:     c.CommentID,
		Text:           c.Text,
		SenderID:       c.SenderID,
		SenderUsername: c.SenderUsername,
	}
}
