package store

import (
	"context"

	"replydesk.app/server/core/db/sqlc"
	"replydesk.app/server/internal/model"
)

type ruleStore struct {
	queries *sqlc.Queries
}

func newRuleStore(queries *sqlc.Queries) RuleStore {
	return &ruleStore{queries: queries}
}

func (s *ruleStore) ListByUser(ctx context.Context, userID int64) ([]model.AutomationRule, error) {
	rows, err := s.queries.ListAutomationRulesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRuleModels(rows), nil
}

func (s *ruleStore) ListActiveForChannel(ctx context.Context, userID int64, ch model.Channel) ([]model.AutomationRule, error) {
	rows, err := s.queries.ListActiveAutomationRulesForChannel(ctx, sqlc.ListActiveAutomationRulesForChannelParams{
		UserID:  userID,
		Channel: string(ch),
	})
	if err != nil {
		return nil, err
	}
	return toRuleModels(rows), nil
}

func (s *ruleStore) GetByID(ctx context.Context, id, userID int64) (*model.AutomationRule, error) {
	row, err := s.queries.GetAutomationRule(ctx, sqlc.GetAutomationRuleParams{ID: id, UserID: userID})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toRuleModel(row), nil
}

func (s *ruleStore) Create(ctx context.Context, rule *model.AutomationRule) error {
	row, err := s.queries.CreateAutomationRule(ctx, sqlc.CreateAutomationRuleParams{
		ID:          rule.ID,
		UserID:      rule.UserID,
		TriggerType: string(rule.TriggerType),
		TriggerText: rule.TriggerText,
		ReplyText:   rule.ReplyText,
		MatchType:   string(rule.MatchType),
		IsActive:    rule.IsActive,
	})
	if err != nil {
		return err
	}
	*rule = *toRuleModel(row)
	return nil
}

func (s *ruleStore) Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	row, err := s.queries.UpdateAutomationRule(ctx, sqlc.UpdateAutomationRuleParams{
		TriggerType: in.TriggerType,
		TriggerText: in.TriggerText,
		ReplyText:   in.ReplyText,
		MatchType:   in.MatchType,
		IsActive:    in.IsActive,
		ID:          id,
		UserID:      userID,
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toRuleModel(row), nil
}

func (s *ruleStore) Delete(ctx context.Context, id, userID int64) error {
	n, err := s.queries.DeleteAutomationRule(ctx, sqlc.DeleteAutomationRuleParams{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toRuleModel(row sqlc.AutomationRule) *model.AutomationRule {
	return &model.AutomationRule{
		ID:          row.ID,
		UserID:      row.UserID,
		TriggerType: model.TriggerType(row.TriggerType),
		TriggerText: row.TriggerText,
		ReplyText:   row.ReplyText,
		MatchType:   model.MatchType(row.MatchType),
		IsActive:    row.IsActive,
		UsageCount:  row.UsageCount,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toRuleModels(rows []sqlc.AutomationRule) []model.AutomationRule {
	result := make([]model.AutomationRule, len(rows))
	for i, row := range rows {
		result[i] = *toRuleModel(row)
	}
	return result
}
