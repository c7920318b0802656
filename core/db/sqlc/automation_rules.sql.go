// Queries for core/db/queries/automation_rules.sql.

package sqlc

import (
	"context"
)

const createAutomationRule = `-- name: CreateAutomationRule :one
INSERT INTO automation_rules (id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active, usage_count, created_at, updated_at
`

type CreateAutomationRuleParams struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	TriggerType string `json:"trigger_type"`
	TriggerText string `json:"trigger_text"`
	ReplyText   string `json:"reply_text"`
	MatchType   string `json:"match_type"`
	IsActive    bool   `json:"is_active"`
}

func (q *Queries) CreateAutomationRule(ctx context.Context, arg CreateAutomationRuleParams) (AutomationRule, error) {
	row := q.db.QueryRow(ctx, createAutomationRule,
		arg.ID,
		arg.UserID,
		arg.TriggerType,
		arg.TriggerText,
		arg.ReplyText,
		arg.MatchType,
		arg.IsActive,
	)
	var i AutomationRule
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.TriggerType,
		&i.TriggerText,
		&i.ReplyText,
		&i.MatchType,
		&i.IsActive,
		&i.UsageCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteAutomationRule = `-- name: DeleteAutomationRule :execrows
DELETE FROM automation_rules WHERE id = $1 AND user_id = $2
`

type DeleteAutomationRuleParams struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func (q *Queries) DeleteAutomationRule(ctx context.Context, arg DeleteAutomationRuleParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAutomationRule, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getAutomationRule = `-- name: GetAutomationRule :one
SELECT id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active, usage_count, created_at, updated_at FROM automation_rules WHERE id = $1 AND user_id = $2
`

type GetAutomationRuleParams struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
}

func (q *Queries) GetAutomationRule(ctx context.Context, arg GetAutomationRuleParams) (AutomationRule, error) {
	row := q.db.QueryRow(ctx, getAutomationRule, arg.ID, arg.UserID)
	var i AutomationRule
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.TriggerType,
		&i.TriggerText,
		&i.ReplyText,
		&i.MatchType,
		&i.IsActive,
		&i.UsageCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listActiveAutomationRulesForChannel = `-- name: ListActiveAutomationRulesForChannel :many
SELECT id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active, usage_count, created_at, updated_at FROM automation_rules
WHERE user_id = $1
  AND is_active
  AND trigger_type IN ($2::text, 'both')
ORDER BY created_at DESC, id DESC
`

type ListActiveAutomationRulesForChannelParams struct {
	UserID  int64  `json:"user_id"`
	Channel string `json:"channel"`
}

func (q *Queries) ListActiveAutomationRulesForChannel(ctx context.Context, arg ListActiveAutomationRulesForChannelParams) ([]AutomationRule, error) {
	rows, err := q.db.Query(ctx, listActiveAutomationRulesForChannel, arg.UserID, arg.Channel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AutomationRule
	for rows.Next() {
		var i AutomationRule
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.TriggerType,
			&i.TriggerText,
			&i.ReplyText,
			&i.MatchType,
			&i.IsActive,
			&i.UsageCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAutomationRulesByUser = `-- name: ListAutomationRulesByUser :many
SELECT id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active, usage_count, created_at, updated_at FROM automation_rules
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListAutomationRulesByUser(ctx context.Context, userID int64) ([]AutomationRule, error) {
	rows, err := q.db.Query(ctx, listAutomationRulesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AutomationRule
	for rows.Next() {
		var i AutomationRule
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.TriggerType,
			&i.TriggerText,
			&i.ReplyText,
			&i.MatchType,
			&i.IsActive,
			&i.UsageCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateAutomationRule = `-- name: UpdateAutomationRule :one
UPDATE automation_rules
SET trigger_type = COALESCE($1, trigger_type),
    trigger_text = COALESCE($2, trigger_text),
    reply_text   = COALESCE($3, reply_text),
    match_type   = COALESCE($4, match_type),
    is_active    = COALESCE($5, is_active),
    updated_at   = now()
WHERE id = $6 AND user_id = $7
RETURNING id, user_id, trigger_type, trigger_text, reply_text, match_type, is_active, usage_count, created_at, updated_at
`

type UpdateAutomationRuleParams struct {
	TriggerType *string `json:"trigger_type"`
	TriggerText *string `json:"trigger_text"`
	ReplyText   *string `json:"reply_text"`
	MatchType   *string `json:"match_type"`
	IsActive    *bool   `json:"is_active"`
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
}

func (q *Queries) UpdateAutomationRule(ctx context.Context, arg UpdateAutomationRuleParams) (AutomationRule, error) {
	row := q.db.QueryRow(ctx, updateAutomationRule,
		arg.TriggerType,
		arg.TriggerText,
		arg.ReplyText,
		arg.MatchType,
		arg.IsActive,
		arg.ID,
		arg.UserID,
	)
	var i AutomationRule
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.TriggerType,
		&i.TriggerText,
		&i.ReplyText,
		&i.MatchType,
		&i.IsActive,
		&i.UsageCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
