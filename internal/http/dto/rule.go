package dto

import (
	"encoding/json"

	"replydesk.app/server/internal/model"
)

// CreateRuleRequest accepts user_id as a string or a number.
type CreateRuleRequest struct {
	UserID      json.Number `json:"user_id"`
	TriggerType *string     `json:"trigger_type"`
	TriggerText *string     `json:"trigger_text"`
	ReplyText   *string     `json:"reply_text"`
	MatchType   *string     `json:"match_type"`
	IsActive    *bool       `json:"is_active"`
}

func (r CreateRuleRequest) Input() model.RuleInput {
	return model.RuleInput{
		TriggerType: r.TriggerType,
		TriggerText: r.TriggerText,
		ReplyText:   r.ReplyText,
		MatchType:   r.MatchType,
		IsActive:    r.IsActive,
	}
}

// UpdateRuleRequest is a partial update; absent fields keep their value.
type UpdateRuleRequest struct {
	TriggerType *string `json:"trigger_type"`
	TriggerText *string `json:"trigger_text"`
	ReplyText   *string `json:"reply_text"`
	MatchType   *string `json:"match_type"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateRuleRequest) Input() model.RuleInput {
	return model.RuleInput{
		TriggerType: r.TriggerType,
		TriggerText: r.TriggerText,
		ReplyText:   r.ReplyText,
		MatchType:   r.MatchType,
		IsActive:    r.IsActive,
	}
}

type RuleResponse struct {
	Rule model.AutomationRule `json:"rule"`
}

type RulesResponse struct {
	Rules []model.AutomationRule `json:"rules"`
}
