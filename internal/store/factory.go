package store

import (
	"replydesk.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Rules() RuleStore {
	return newRuleStore(s.queries)
}

func (s *Stores) Queue() QueueStore {
	return newQueueStore(s.queries)
}

func (s *Stores) ReplyLogs() ReplyLogStore {
	return newReplyLogStore(s.queries)
}

func (s *Stores) Settings() SettingsStore {
	return newSettingsStore(s.queries)
}

func (s *Stores) InstagramAccounts() InstagramAccountStore {
	return newInstagramAccountStore(s.queries)
}

func (s *Stores) Inbound() InboundStore {
	return newInboundStore(s.queries)
}
