package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every record logged with a context that carries them.
// Handlers and the worker enrich the context once, so downstream code can log
// without repeating user_id, message_id and friends.
type LogFields struct {
	UserID      *int64  // Owning account
	RuleID      *int64  // Automation rule involved in the operation
	QueueItemID *int64  // Auto-reply queue entry
	MessageID   *string // Platform id of the inbound DM or comment
	StreamMsgID *string // Redis stream message id
	Channel     *string // "dm" or "comment"
	Component   string  // e.g. "replydesk.worker.processor"
}

// WithLogFields merges fields into the context. Newer non-nil/non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields carried by ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.RuleID != nil {
		result.RuleID = next.RuleID
	}
	if next.QueueItemID != nil {
		result.QueueItemID = next.QueueItemID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.StreamMsgID != nil {
		result.StreamMsgID = next.StreamMsgID
	}
	if next.Channel != nil {
		result.Channel = next.Channel
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, handy for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}

// Truncate cuts s to maxLen bytes and appends "..." when it had to cut.
// Inbound texts are user content, so they go through this before being logged.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
