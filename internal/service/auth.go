package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"replydesk.app/server/common/id"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrUserNotFound   = errors.New("user not found")
	ErrSessionExpired = errors.New("session expired")
)

const SessionTTL = 7 * 24 * time.Hour

type CallbackResult struct {
	User    *model.User
	Session *model.Session
}

type AuthService interface {
	GetAuthorizationURL(state string, opts ...AuthURLOption) (string, error)
	HandleCallback(ctx context.Context, code string) (*CallbackResult, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.Session, error)
	GetSessionByID(ctx context.Context, sessionID int64) (*model.Session, error)
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	identity     IdentityProvider
	now          func() time.Time
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore, identity IdentityProvider) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		identity:     identity,
		now:          time.Now,
	}
}

func (s *authService) GetAuthorizationURL(state string, opts ...AuthURLOption) (string, error) {
	var o AuthURLOptions
	for _, opt := range opts {
		opt(&o)
	}

	url, err := s.identity.AuthorizationURL(state, o)
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url, nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*CallbackResult, error) {
	identity, err := s.identity.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}

	var avatarURL *string
	if identity.AvatarURL != "" {
		avatarURL = &identity.AvatarURL
	}

	user := &model.User{
		ID:        id.New(),
		Name:      identity.DisplayName(),
		Email:     identity.Email,
		AvatarURL: avatarURL,
		WorkOSID:  &identity.ID,
	}

	if err := s.userStore.UpsertByWorkOSID(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to upsert user",
			"error", err,
			"workos_id", identity.ID,
		)
		return nil, fmt.Errorf("upserting user: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(SessionTTL),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID,
	)

	return &CallbackResult{User: user, Session: session}, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.Session, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrSessionExpired
		}
		return nil, nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	return user, session, nil
}

func (s *authService) GetSessionByID(ctx context.Context, sessionID int64) (*model.Session, error) {
	session, err := s.sessionStore.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
