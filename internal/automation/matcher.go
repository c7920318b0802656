package automation

import (
	"strings"

	"replydesk.app/server/internal/model"
)

// Normalize trims s, lower-cases it and collapses every run of whitespace to a
// single space. Both sides of a comparison go through it.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Match returns the rule that should answer text arriving on ch, or nil.
//
// Only active rules whose trigger type accepts ch are considered. When several
// match, the most recently created one wins and equal timestamps fall back to the
// larger id, so the result does not depend on the order of rules. Regex rules
// whose pattern does not compile are skipped.
func Match(text string, ch model.Channel, rules []model.AutomationRule) *model.AutomationRule {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var best *model.AutomationRule
	for i := range rules {
		rule := rules[i]
		if !rule.IsActive || !rule.TriggerType.Accepts(ch) {
			continue
		}
		if !matches(rule, normalized) {
			continue
		}
		if best == nil || newer(rule, *best) {
			best = &rule
		}
	}

	return best
}

func matches(rule model.AutomationRule, normalized string) bool {
	if rule.MatchType == model.MatchTypeRegex {
		re, err := compilePattern(rule.TriggerText)
		if err != nil {
			return false
		}
		return re.MatchString(normalized)
	}

	trigger := Normalize(rule.TriggerText)
	if trigger == "" {
		return false
	}

	switch rule.MatchType {
	case model.MatchTypeExact:
		return normalized == trigger
	case model.MatchTypeContains:
		return strings.Contains(normalized, trigger)
	case model.MatchTypePrefix:
		return strings.HasPrefix(normalized, trigger)
	case model.MatchTypeSuffix:
		return strings.HasSuffix(normalized, trigger)
	}
	return false
}

func newer(a, b model.AutomationRule) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
