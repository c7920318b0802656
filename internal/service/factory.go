package service

import (
	"replydesk.app/server/internal/instagram"
	"replydesk.app/server/internal/queue"
	"replydesk.app/server/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	identity  IdentityProvider
	instagram instagram.Client
	producer  queue.Producer
}

func NewServices(stores *store.Stores, txRunner TxRunner, identity IdentityProvider, ig instagram.Client, producer queue.Producer) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		identity:  identity,
		instagram: ig,
		producer:  producer,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.identity)
}

func (s *Services) Rules() RuleService {
	return NewRuleService(s.stores.Rules())
}

func (s *Services) Queue() QueueService {
	return NewQueueService(s.stores.Queue(), s.stores.Inbound(), s.stores.ReplyLogs())
}

func (s *Services) Settings() SettingsService {
	return NewSettingsService(s.stores.Settings())
}

func (s *Services) Inbound() InboundService {
	return NewInboundService(s.stores.Inbound(), s.producer)
}

func (s *Services) Instagram() InstagramService {
	return NewInstagramService(s.stores.InstagramAccounts(), s.instagram)
}

func (s *Services) TxRunner() TxRunner {
	return s.txRunner
}
