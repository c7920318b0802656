package store

import (
	"context"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type instagramAccountStore struct {
	queries *sqlc.Queries
}

func newInstagramAccountStore(queries *sqlc.Queries) InstagramAccountStore {
	return &instagramAccountStore{queries: queries}
}

func (s *instagramAccountStore) Upsert(ctx context.Context, account *model.InstagramAccount) error {
	row, err := s.queries.UpsertInstagramAccount(ctx, sqlc.UpsertInstagramAccountParams{
		ID:             account.ID,
		UserID:         account.UserID,
		IgUserID:       account.IGUserID,
		Username:       account.Username,
		AccessToken:    account.AccessToken,
		TokenExpiresAt: timeToPgTimestamptz(account.TokenExpiresAt),
	})
	if err != nil {
		return err
	}
	*account = *toInstagramAccountModel(row)
	return nil
}

func (s *instagramAccountStore) GetByUser(ctx context.Context, userID int64) (*model.InstagramAccount, error) {
	row, err := s.queries.GetInstagramAccountByUser(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toInstagramAccountModel(row), nil
}

func (s *instagramAccountStore) GetByIGUserID(ctx context.Context, igUserID string) (*model.InstagramAccount, error) {
	row, err := s.queries.GetInstagramAccountByIgUserID(ctx, igUserID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toInstagramAccountModel(row), nil
}

func (s *instagramAccountStore) DeleteByUser(ctx context.Context, userID int64) error {
	n, err := s.queries.DeleteInstagramAccountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toInstagramAccountModel(row sqlc.InstagramAccount) *model.InstagramAccount {
	return &model.InstagramAccount{
		ID:             row.ID,
		UserID:         row.UserID,
		IGUserID:       row.IgUserID,
		Username:       row.Username,
		AccessToken:    row.AccessToken,
		TokenExpiresAt: pgTimestamptzToTime(row.TokenExpiresAt),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
