package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/automation"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

var (
	ErrRuleNotFound = errors.New("rule not found")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError carries every field-level problem found in a request.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type RuleService interface {
	List(ctx context.Context, userID int64) ([]model.AutomationRule, error)
	Create(ctx context.Context, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error)
	Delete(ctx context.Context, id, userID int64) error
}

type ruleService struct {
	rules store.RuleStore
}

func NewRuleService(rules store.RuleStore) RuleService {
	return &ruleService{rules: rules}
}

func (s *ruleService) List(ctx context.Context, userID int64) ([]model.AutomationRule, error) {
	rules, err := s.rules.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	return rules, nil
}

func (s *ruleService) Create(ctx context.Context, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	if errs := automation.ValidateCreate(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	rule := &model.AutomationRule{
		ID:          id.New(),
		UserID:      userID,
		TriggerType: model.TriggerTypeBoth,
		MatchType:   model.MatchTypeExact,
		IsActive:    true,
	}
	*rule = rule.Apply(in)

	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{RuleID: &rule.ID})
	slog.InfoContext(ctx, "automation rule created",
		"trigger_type", rule.TriggerType,
		"match_type", rule.MatchType)

	return rule, nil
}

func (s *ruleService) Update(ctx context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
	existing, err := s.rules.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("getting rule: %w", err)
	}

	if errs := automation.ValidateUpdate(in, *existing); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	rule, err := s.rules.Update(ctx, id, userID, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("updating rule: %w", err)
	}

	return rule, nil
}

func (s *ruleService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.rules.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRuleNotFound
		}
		return fmt.Errorf("deleting rule: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{RuleID: &id})
	slog.InfoContext(ctx, "automation rule deleted")
	return nil
}
