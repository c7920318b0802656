package worker

import (
	"context"

	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// InboundProcessor runs automation for one stored DM or comment. A nil item
// with a nil error means nothing was queued.
type InboundProcessor interface {
	Process(ctx context.Context, item model.InboundItem, sp StoreProvider) (*model.QueueItem, error)
}

// Suggester drafts a reply when no rule matched.
type Suggester interface {
	Suggest(ctx context.Context, item model.InboundItem) (string, error)
}
