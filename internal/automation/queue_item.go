package automation

import "replydesk.app/server/internal/model"

// NewQueueItem builds the pending suggestion for src. conversation_id is carried
// over for DMs only, and the language is derived from the reply.
func NewQueueItem(id int64, src model.InboundItem, reply string, ruleID *int64) model.QueueItem {
	item := model.QueueItem{
		ID:               id,
		UserID:           src.UserID,
		MessageType:      src.Channel,
		MessageID:        src.PlatformID,
		MessageText:      src.Text,
		SenderUsername:   src.SenderUsername,
		SenderID:         src.SenderID,
		SuggestedReply:   reply,
		DetectedLanguage: DetectLanguage(reply),
		Status:           model.QueueStatusPending,
		RuleID:           ruleID,
	}
	if src.Channel == model.ChannelDM {
		item.ConversationID = src.ConversationID
	}
	return item
}
