package model

import "time"

// ReplyLog records a reply the sender attempted. Rows are written outside this
// service and are only read here.
type ReplyLog struct {
	ID          int64     `json:"id,string"`
	UserID      int64     `json:"user_id,string"`
	QueueItemID *int64    `json:"queue_item_id,string,omitempty"`
	MessageType string    `json:"message_type"`
	MessageID   string    `json:"message_id"`
	ReplyText   string    `json:"reply_text"`
	Status      string    `json:"status"`
	Error       *string   `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
