package queue

type TaskType string

const (
	// TaskTypeInbound asks the worker to run automation for one stored DM or comment.
	TaskTypeInbound TaskType = "inbound_item"
)

// InboundTask is what the webhook side publishes for the worker.
type InboundTask struct {
	UserID     int64
	Channel    string // "dm" or "comment"
	SourceID   int64  // internal id of the stored message or comment
	PlatformID string // Instagram id of the message or comment
	TraceID    *string
	Attempt    int
}
