package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/instagram"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

var (
	ErrInstagramNotConnected = errors.New("instagram account not connected")
	ErrInstagramUnavailable  = errors.New("instagram unavailable")
)

type InstagramStatus struct {
	Connected bool
	Account   *model.InstagramAccount
}

type InstagramService interface {
	AuthorizationURL(state string) string
	// Connect finishes the OAuth flow: code -> short-lived -> long-lived token -> profile.
	// A rejected code maps to ErrInvalidCode, any other Instagram failure to ErrInstagramUnavailable.
	Connect(ctx context.Context, userID int64, code string) (*model.InstagramAccount, error)
	Status(ctx context.Context, userID int64) (*InstagramStatus, error)
	Disconnect(ctx context.Context, userID int64) error
	// ResolveAccount finds the account a webhook entry belongs to.
	ResolveAccount(ctx context.Context, igUserID string) (*model.InstagramAccount, error)
}

type instagramService struct {
	accounts store.InstagramAccountStore
	client   instagram.Client
	now      func() time.Time
}

func NewInstagramService(accounts store.InstagramAccountStore, client instagram.Client) InstagramService {
	return &instagramService{accounts: accounts, client: client, now: time.Now}
}

func (s *instagramService) AuthorizationURL(state string) string {
	return s.client.AuthorizationURL(state)
}

func (s *instagramService) Connect(ctx context.Context, userID int64, code string) (*model.InstagramAccount, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}

	short, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return nil, classifyInstagramErr(err)
	}

	long, err := s.client.ExchangeLongLived(ctx, short.AccessToken)
	if err != nil {
		return nil, classifyInstagramErr(err)
	}

	profile, err := s.client.GetProfile(ctx, long.AccessToken)
	if err != nil {
		return nil, classifyInstagramErr(err)
	}

	igUserID := profile.UserID
	if igUserID == "" {
		igUserID = short.UserID
	}

	account := &model.InstagramAccount{
		ID:          id.New(),
		UserID:      userID,
		IGUserID:    igUserID,
		Username:    profile.Username,
		AccessToken: long.AccessToken,
	}
	if long.ExpiresIn > 0 {
		expires := s.now().Add(long.ExpiresIn)
		account.TokenExpiresAt = &expires
	}

	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, fmt.Errorf("saving instagram account: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &userID})
	slog.InfoContext(ctx, "instagram account connected",
		"ig_user_id", account.IGUserID,
		"username", account.Username)

	return account, nil
}

func (s *instagramService) Status(ctx context.Context, userID int64) (*InstagramStatus, error) {
	account, err := s.accounts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &InstagramStatus{Connected: false}, nil
		}
		return nil, fmt.Errorf("getting instagram account: %w", err)
	}
	return &InstagramStatus{Connected: true, Account: account}, nil
}

// Disconnect succeeds whether or not an account was connected.
func (s *instagramService) Disconnect(ctx context.Context, userID int64) error {
	if err := s.accounts.DeleteByUser(ctx, userID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("deleting instagram account: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &userID})
	slog.InfoContext(ctx, "instagram account disconnected")
	return nil
}

func (s *instagramService) ResolveAccount(ctx context.Context, igUserID string) (*model.InstagramAccount, error) {
	account, err := s.accounts.GetByIGUserID(ctx, igUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInstagramNotConnected
		}
		return nil, fmt.Errorf("resolving instagram account: %w", err)
	}
	return account, nil
}

func classifyInstagramErr(err error) error {
	if instagram.IsClientError(err) {
		return fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return fmt.Errorf("%w: %v", ErrInstagramUnavailable, err)
}
