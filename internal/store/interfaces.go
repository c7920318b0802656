package store

import (
	"context"
	"errors"

	"replydesk.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// UpsertByWorkOSID inserts the user or refreshes the profile of the one already
	// linked to the WorkOS id. user.ID is only used on insert.
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// RuleStore persists automation rules. Every lookup is scoped to the owner, a
// rule of another account behaves as if it did not exist.
type RuleStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.AutomationRule, error)
	ListActiveForChannel(ctx context.Context, userID int64, ch model.Channel) ([]model.AutomationRule, error)
	GetByID(ctx context.Context, id, userID int64) (*model.AutomationRule, error)
	Create(ctx context.Context, rule *model.AutomationRule) error
	Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	Delete(ctx context.Context, id, userID int64) error
}

// QueueStore persists auto-reply suggestions awaiting review
type QueueStore interface {
	Create(ctx context.Context, item *model.QueueItem) error
	ListPending(ctx context.Context, userID int64, limit int32) ([]model.QueueItem, error)
	// Reject moves a pending item owned by userID to rejected. ErrNotFound covers a
	// missing item, a foreign one and one that is no longer pending.
	Reject(ctx context.Context, id, userID int64, reason string) (*model.QueueItem, error)
	HasPending(ctx context.Context, userID int64, messageID string) (bool, error)
}

// ReplyLogStore reads the append-only reply log
type ReplyLogStore interface {
	List(ctx context.Context, userID int64, limit int32) ([]model.ReplyLog, error)
}

// SettingsStore defines the contract for auto-reply settings
type SettingsStore interface {
	Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error)
	Upsert(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error)
}

// InstagramAccountStore defines the contract for connected Instagram accounts
type InstagramAccountStore interface {
	Upsert(ctx context.Context, account *model.InstagramAccount) error
	GetByUser(ctx context.Context, userID int64) (*model.InstagramAccount, error)
	GetByIGUserID(ctx context.Context, igUserID string) (*model.InstagramAccount, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// InboundStore persists DMs and comments received over the webhook. Saving the
// same platform id twice for a user keeps the first row.
type InboundStore interface {
	SaveMessage(ctx context.Context, msg *model.InstagramMessage) (created bool, err error)
	SaveComment(ctx context.Context, comment *model.InstagramComment) (created bool, err error)
	GetMessage(ctx context.Context, id, userID int64) (*model.InstagramMessage, error)
	GetComment(ctx context.Context, id, userID int64) (*model.InstagramComment, error)
}
