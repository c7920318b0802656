package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type inboundStore struct {
	queries *sqlc.Queries
}

func newInboundStore(queries *sqlc.Queries) InboundStore {
	return &inboundStore{queries: queries}
}

// SaveMessage inserts msg. On a duplicate platform id the stored row is loaded
// into msg instead and created is false.
func (s *inboundStore) SaveMessage(ctx context.Context, msg *model.InstagramMessage) (bool, error) {
	row, err := s.queries.CreateInstagramMessage(ctx, sqlc.CreateInstagramMessageParams{
		ID:             msg.ID,
		UserID:         msg.UserID,
		MessageID:      msg.MessageID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderUsername: msg.SenderUsername,
		Text:           msg.Text,
		ReceivedAt:     pgtype.Timestamptz{Time: msg.ReceivedAt, Valid: true},
	})
	if err == nil {
		*msg = *toMessageModel(row)
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	row, err = s.queries.GetInstagramMessageByPlatformID(ctx, sqlc.GetInstagramMessageByPlatformIDParams{
		UserID:    msg.UserID,
		MessageID: msg.MessageID,
	})
	if err != nil {
		return false, mapNotFound(err)
	}
	*msg = *toMessageModel(row)
	return false, nil
}

func (s *inboundStore) SaveComment(ctx context.Context, comment *model.InstagramComment) (bool, error) {
	row, err := s.queries.CreateInstagramComment(ctx, sqlc.CreateInstagramCommentParams{
		ID:             comment.ID,
		UserID:         comment.UserID,
		CommentID:      comment.CommentID,
		MediaID:        comment.MediaID,
		SenderID:       comment.SenderID,
		SenderUsername: comment.SenderUsername,
		Text:           comment.Text,
		ReceivedAt:     pgtype.Timestamptz{Time: comment.ReceivedAt, Valid: true},
	})
	if err == nil {
		*comment = *toCommentModel(row)
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	row, err = s.queries.GetInstagramCommentByPlatformID(ctx, sqlc.GetInstagramCommentByPlatformIDParams{
		UserID:    comment.UserID,
		CommentID: comment.CommentID,
	})
	if err != nil {
		return false, mapNotFound(err)
	}
	*comment = *toCommentModel(row)
	return false, nil
}

func (s *inboundStore) GetMessage(ctx context.Context, id, userID int64) (*model.InstagramMessage, error) {
	row, err := s.queries.GetInstagramMessage(ctx, sqlc.GetInstagramMessageParams{ID: id, UserID: userID})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toMessageModel(row), nil
}

func (s *inboundStore) GetComment(ctx context.Context, id, userID int64) (*model.InstagramComment, error) {
	row, err := s.queries.GetInstagramComment(ctx, sqlc.GetInstagramCommentParams{ID: id, UserID: userID})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toCommentModel(row), nil
}

func toMessageModel(row sqlc.InstagramMessage) *model.InstagramMessage {
	return &model.InstagramMessage{
		ID:             row.ID,
		UserID:         row.UserID,
		MessageID:      row.MessageID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		SenderUsername: row.SenderUsername,
		Text:           row.Text,
		ReceivedAt:     row.ReceivedAt.Time,
		CreatedAt:      row.CreatedAt.Time,
	}
}

func toCommentModel(row sqlc.InstagramComment) *model.InstagramComment {
	return &model.InstagramComment{
		ID:             row.ID,
		UserID:         row.UserID,
		CommentID:      row.CommentID,
		MediaID:        row.MediaID,
		SenderID:       row.SenderID,
		SenderUsername: row.SenderUsername,
		Text:           row.Text,
		ReceivedAt:     row.ReceivedAt.Time,
		CreatedAt:      row.CreatedAt.Time,
	}
}
