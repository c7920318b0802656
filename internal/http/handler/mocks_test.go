package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

const (
	sessionUserID int64 = 42
	sessionID     int64 = 900
)

type mockAuthService struct {
	authURLFn         func(state string, opts ...service.AuthURLOption) (string, error)
	handleCallbackFn  func(ctx context.Context, code string) (*service.CallbackResult, error)
	validateSessionFn func(ctx context.Context, sessionID int64) (*model.User, *model.Session, error)
	logoutFn          func(ctx context.Context, sessionID int64) error

	loggedOut []int64
}

func (m *mockAuthService) GetAuthorizationURL(state string, opts ...service.AuthURLOption) (string, error) {
	if m.authURLFn != nil {
		return m.authURLFn(state, opts...)
	}
	return "https://auth.example.com/authorize?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*service.CallbackResult, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, id int64) (*model.User, *model.Session, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, id)
	}
	if id != sessionID {
		return nil, nil, service.ErrSessionExpired
	}
	return &model.User{ID: sessionUserID, Name: "Aino", Email: "aino@kahvila.fi"},
		&model.Session{ID: id, UserID: sessionUserID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *mockAuthService) GetSessionByID(_ context.Context, id int64) (*model.Session, error) {
	return &model.Session{ID: id, UserID: sessionUserID}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, id int64) error {
	m.loggedOut = append(m.loggedOut, id)
	if m.logoutFn != nil {
		return m.logoutFn(ctx, id)
	}
	return nil
}

type mockRuleService struct {
	listFn   func(ctx context.Context, userID int64) ([]model.AutomationRule, error)
	createFn func(ctx context.Context, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	updateFn func(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (m *mockRuleService) List(ctx context.Context, userID int64) ([]model.AutomationRule, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRuleService) Create(ctx context.Context, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, in)
	}
	return &model.AutomationRule{ID: 1, UserID: userID}, nil
}

func (m *mockRuleService) Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, userID, in)
	}
	return &model.AutomationRule{ID: id, UserID: userID}, nil
}

func (m *mockRuleService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

type mockQueueService struct {
	enqueueFn func(ctx context.Context, params service.EnqueueParams) (*model.QueueItem, error)
	listFn    func(ctx context.Context, userID int64) ([]model.QueueItem, error)
	rejectFn  func(ctx context.Context, id, userID int64, reason *string) (*model.QueueItem, error)
	logsFn    func(ctx context.Context, userID int64, limit int) ([]model.ReplyLog, error)
}

func (m *mockQueueService) Enqueue(ctx context.Context, params service.EnqueueParams) (*model.QueueItem, error) {
	if m.enqueueFn != nil {
		return m.enqueueFn(ctx, params)
	}
	return &model.QueueItem{ID: 1, UserID: params.UserID}, nil
}

func (m *mockQueueService) ListPending(ctx context.Context, userID int64) ([]model.QueueItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockQueueService) Reject(ctx context.Context, id, userID int64, reason *string) (*model.QueueItem, error) {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, id, userID, reason)
	}
	return &model.QueueItem{ID: id, UserID: userID, Status: model.QueueStatusRejected}, nil
}

func (m *mockQueueService) Logs(ctx context.Context, userID int64, limit int) ([]model.ReplyLog, error) {
	if m.logsFn != nil {
		return m.logsFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockSettingsService struct {
	getFn    func(ctx context.Context, userID int64) (*model.AutoReplySettings, error)
	updateFn func(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error)
}

func (m *mockSettingsService) Get(ctx context.Context, userID int64) (*model.AutoReplySettings, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return &model.AutoReplySettings{UserID: userID}, nil
}

func (m *mockSettingsService) Update(ctx context.Context, userID int64, upd model.SettingsUpdate) (*model.AutoReplySettings, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, upd)
	}
	return &model.AutoReplySettings{UserID: userID}, nil
}

type mockInstagramService struct {
	connectFn    func(ctx context.Context, userID int64, code string) (*model.InstagramAccount, error)
	statusFn     func(ctx context.Context, userID int64) (*service.InstagramStatus, error)
	disconnectFn func(ctx context.Context, userID int64) error
}

func (m *mockInstagramService) AuthorizationURL(state string) string {
	return "https://www.instagram.com/oauth/authorize?state=" + state
}

func (m *mockInstagramService) Connect(ctx context.Context, userID int64, code string) (*model.InstagramAccount, error) {
	if m.connectFn != nil {
		return m.connectFn(ctx, userID, code)
	}
	return &model.InstagramAccount{ID: 5, UserID: userID, IGUserID: "1784", Username: "kahvila"}, nil
}

func (m *mockInstagramService) Status(ctx context.Context, userID int64) (*service.InstagramStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, userID)
	}
	return &service.InstagramStatus{}, nil
}

func (m *mockInstagramService) Disconnect(ctx context.Context, userID int64) error {
	if m.disconnectFn != nil {
		return m.disconnectFn(ctx, userID)
	}
	return nil
}

func (m *mockInstagramService) ResolveAccount(_ context.Context, _ string) (*model.InstagramAccount, error) {
	return nil, service.ErrInstagramNotConnected
}

// newSessionRouter returns a router whose routes sit behind RequireSession
// with a mock that accepts sessionID.
func newSessionRouter() (*gin.Engine, *gin.RouterGroup) {
	router := gin.New()
	return router, router.Group("/", middleware.RequireSession(&mockAuthService{}))
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionIDHeader, strconv.FormatInt(sessionID, 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
