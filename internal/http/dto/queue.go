package dto

import (
	"encoding/json"

	"replydesk.app/server/internal/model"
)

type EnqueueRequest struct {
	UserID       json.Number `json:"user_id"`
	ItemType     string      `json:"item_type"`
	SourceID     json.Number `json:"source_id"`
	AISuggestion string      `json:"ai_suggestion"`
}

type RejectRequest struct {
	QueueItemID json.Number `json:"queue_item_id"`
	UserID      json.Number `json:"user_id"`
	Reason      *string     `json:"reason"`
}

type QueueResponse struct {
	Queue []model.QueueItem `json:"queue"`
}

type RejectResponse struct {
	Success bool            `json:"success"`
	Item    model.QueueItem `json:"item"`
}

type LogsResponse struct {
	Logs []model.ReplyLog `json:"logs"`
}
