package service_test

import (
	"context"

	"replydesk.app/server/internal/instagram"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/queue"
	"replydesk.app/server/internal/service"
)

type mockUserStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.User, error)
	upsertFn  func(ctx context.Context, user *model.User) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return nil
}

type mockSessionStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.Session, error)
	getValidFn      func(ctx context.Context, id int64) (*model.Session, error)
	createFn        func(ctx context.Context, session *model.Session) error
	deleteFn        func(ctx context.Context, id int64) error
	deleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionStore) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return 0, nil
}

type mockRuleStore struct {
	listByUserFn           func(ctx context.Context, userID int64) ([]model.AutomationRule, error)
	listActiveForChannelFn func(ctx context.Context, userID int64, ch model.Channel) ([]model.AutomationRule, error)
	getByIDFn              func(ctx context.Context, id, userID int64) (*model.AutomationRule, error)
	createFn               func(ctx context.Context, rule *model.AutomationRule) error
	updateFn               func(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	deleteFn               func(ctx context.Context, id, userID int64) error
	updateCalls            int
}

func (m *mockRuleStore) ListByUser(ctx context.Context, userID int64) ([]model.AutomationRule, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRuleStore) ListActiveForChannel(ctx context.Context, userID int64, ch model.Channel) ([]model.AutomationRule, error) {
	if m.listActiveForChannelFn != nil {
		return m.listActiveForChannelFn(ctx, userID, ch)
	}
	return nil, nil
}

func (m *mockRuleStore) GetByID(ctx context.Context, id, userID int64) (*model.AutomationRule, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockRuleStore) Create(ctx context.Context, rule *model.AutomationRule) error {
	if m.createFn != nil {
		return m.createFn(ctx, rule)
	}
	return nil
}

func (m *mockRuleStore) Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, in)
	}
	return nil, nil
}

func (m *mockRuleStore) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

type mockQueueStore struct {
	createFn     func(ctx context.Context, item *model.QueueItem) error
	listFn       func(ctx context.Context, userID int64, limit int32) ([]model.QueueItem, error)
	rejectFn     func(ctx context.Context, id, userID int64, reason string) (*model.QueueItem, error)
	hasPendingFn func(ctx context.Context, userID int64, messageID string) (bool, error)
	createCalls  int
}

func (m *mockQueueStore) Create(ctx context.Context, item *model.QueueItem) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return nil
}

func (m *mockQueueStore) ListPending(ctx context.Context, userID int64, limit int32) ([]model.QueueItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockQueueStore) Reject(ctx context.Context, id, userID int64, reason string) (*model.QueueItem, error) {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, id, userID, reason)
	}
	return nil, nil
}

func (m *mockQueueStore) HasPending(ctx context.Context, userID int64, messageID string) (bool, error) {
	if m.hasPendingFn != nil {
		return m.hasPendingFn(ctx, userID, messageID)
	}
	return false, nil
}

type mockReplyLogStore struct {
	listFn func(ctx context.Context, userID int64, limit int32) ([]model.ReplyLog, error)
}

func (m *mockReplyLogStore) List(ctx context.Context, userID int64, limit int32) ([]model.ReplyLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockSettingsStore struct {
	getFn    func(ctx context.Context, userID int64) (*model.AutoReplySettings, error)
	upsertFn func(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error)
}

func (m *mockSettingsStore) Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSettingsStore) Upsert(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, userID, upd)
	}
	return nil, nil
}

type mockInstagramAccountStore struct {
	upsertFn        func(ctx context.Context, account *model.InstagramAccount) error
	getByUserFn     func(ctx context.Context, userID int64) (*model.InstagramAccount, error)
	getByIGUserIDFn func(ctx context.Context, igUserID string) (*model.InstagramAccount, error)
	deleteByUserFn  func(ctx context.Context, userID int64) error
	upsertCalls     int
}

func (m *mockInstagramAccountStore) Upsert(ctx context.Context, account *model.InstagramAccount) error {
	m.upsertCalls++
	if m.upsertFn != nil {
		return m.upsertFn(ctx, account)
	}
	return nil
}

func (m *mockInstagramAccountStore) GetByUser(ctx context.Context, userID int64) (*model.InstagramAccount, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockInstagramAccountStore) GetByIGUserID(ctx context.Context, igUserID string) (*model.InstagramAccount, error) {
	if m.getByIGUserIDFn != nil {
		return m.getByIGUserIDFn(ctx, igUserID)
	}
	return nil, nil
}

func (m *mockInstagramAccountStore) DeleteByUser(ctx context.Context, userID int64) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

type mockInboundStore struct {
	saveMessageFn func(ctx context.Context, msg *model.InstagramMessage) (bool, error)
	saveCommentFn func(ctx context.Context, comment *model.InstagramComment) (bool, error)
	getMessageFn  func(ctx context.Context, id, userID int64) (*model.InstagramMessage, error)
	getCommentFn  func(ctx context.Context, id, userID int64) (*model.InstagramComment, error)
}

func (m *mockInboundStore) SaveMessage(ctx context.Context, msg *model.InstagramMessage) (bool, error) {
	if m.saveMessageFn != nil {
		return m.saveMessageFn(ctx, msg)
	}
	return true, nil
}

func (m *mockInboundStore) SaveComment(ctx context.Context, comment *model.InstagramComment) (bool, error) {
	if m.saveCommentFn != nil {
		return m.saveCommentFn(ctx, comment)
	}
	return true, nil
}

func (m *mockInboundStore) GetMessage(ctx context.Context, id, userID int64) (*model.InstagramMessage, error) {
	if m.getMessageFn != nil {
		return m.getMessageFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockInboundStore) GetComment(ctx context.Context, id, userID int64) (*model.InstagramComment, error) {
	if m.getCommentFn != nil {
		return m.getCommentFn(ctx, id, userID)
	}
	return nil, nil
}

type mockProducer struct {
	enqueueFn func(ctx context.Context, task queue.InboundTask) error
	tasks     []queue.InboundTask
}

// Enqueue records only tasks that were accepted.
func (m *mockProducer) Enqueue(ctx context.Context, task queue.InboundTask) error {
	if m.enqueueFn != nil {
		if err := m.enqueueFn(ctx, task); err != nil {
			return err
		}
	}
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}

type mockIdentityProvider struct {
	authorizationURLFn func(state string, opts service.AuthURLOptions) (string, error)
	authenticateFn     func(ctx context.Context, code string) (*service.Identity, error)
}

func (m *mockIdentityProvider) AuthorizationURL(state string, opts service.AuthURLOptions) (string, error) {
	if m.authorizationURLFn != nil {
		return m.authorizationURLFn(state, opts)
	}
	return "", nil
}

func (m *mockIdentityProvider) Authenticate(ctx context.Context, code string) (*service.Identity, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, code)
	}
	return nil, nil
}

type mockInstagramClient struct {
	authorizationURLFn  func(state string) string
	exchangeCodeFn      func(ctx context.Context, code string) (*instagram.ShortLivedToken, error)
	exchangeLongLivedFn func(ctx context.Context, token string) (*instagram.LongLivedToken, error)
	getProfileFn        func(ctx context.Context, token string) (*instagram.Profile, error)
}

func (m *mockInstagramClient) AuthorizationURL(state string) string {
	if m.authorizationURLFn != nil {
		return m.authorizationURLFn(state)
	}
	return ""
}

func (m *mockInstagramClient) ExchangeCode(ctx context.Context, code string) (*instagram.ShortLivedToken, error) {
	if m.exchangeCodeFn != nil {
		return m.exchangeCodeFn(ctx, code)
	}
	return &instagram.ShortLivedToken{AccessToken: "short", UserID: "1784"}, nil
}

func (m *mockInstagramClient) ExchangeLongLived(ctx context.Context, token string) (*instagram.LongLivedToken, error) {
	if m.exchangeLongLivedFn != nil {
		return m.exchangeLongLivedFn(ctx, token)
	}
	return &instagram.LongLivedToken{AccessToken: "long"}, nil
}

func (m *mockInstagramClient) GetProfile(ctx context.Context, token string) (*instagram.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, token)
	}
	return &instagram.Profile{UserID: "1784", Username: "kahvila"}, nil
}
