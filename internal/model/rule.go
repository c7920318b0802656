package model

import "time"

// TriggerType is the set of channels a rule listens on.
type TriggerType string

const (
	TriggerTypeComment TriggerType = "comment"
	TriggerTypeDM      TriggerType = "dm"
	TriggerTypeBoth    TriggerType = "both"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerTypeComment, TriggerTypeDM, TriggerTypeBoth:
		return true
	}
	return false
}

// Accepts reports whether a rule with this trigger type applies to an item on ch.
func (t TriggerType) Accepts(ch Channel) bool {
	if t == TriggerTypeBoth {
		return ch.Valid()
	}
	return string(t) == string(ch)
}

type MatchType string

const (
	MatchTypeExact    MatchType = "exact"
	MatchTypeContains MatchType = "contains"
	MatchTypePrefix   MatchType = "prefix"
	MatchTypeSuffix   MatchType = "suffix"
	MatchTypeRegex    MatchType = "regex"
)

func (m MatchType) Valid() bool {
	switch m {
	case MatchTypeExact, MatchTypeContains, MatchTypePrefix, MatchTypeSuffix, MatchTypeRegex:
		return true
	}
	return false
}

// Channel is where a single inbound item arrived. Unlike TriggerType it is never "both".
type Channel string

const (
	ChannelDM      Channel = "dm"
	ChannelComment Channel = "comment"
)

func (c Channel) Valid() bool {
	return c == ChannelDM || c == ChannelComment
}

type AutomationRule struct {
	ID          int64       `json:"id,string"`
	UserID      int64       `json:"user_id,string"`
	TriggerType TriggerType `json:"trigger_type"`
	TriggerText string      `json:"trigger_text"`
	ReplyText   string      `json:"reply_text"`
	MatchType   MatchType   `json:"match_type"`
	IsActive    bool        `json:"is_active"`
	UsageCount  int32       `json:"usage_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RuleInput is a create or partial-update request. Nil fields are absent.
type RuleInput struct {
	TriggerType *string
	TriggerText *string
	ReplyText   *string
	MatchType   *string
	IsActive    *bool
}

// Apply returns a copy of r with the present fields of in written over it.
func (r AutomationRule) Apply(in RuleInput) AutomationRule {
	if in.TriggerType != nil {
		r.TriggerType = TriggerType(*in.TriggerType)
	}
	if in.TriggerText != nil {
		r.TriggerText = *in.TriggerText
	}
	if in.ReplyText != nil {
		r.ReplyText = *in.ReplyText
	}
	if in.MatchType != nil {
		r.MatchType = MatchType(*in.MatchType)
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	return r
}
