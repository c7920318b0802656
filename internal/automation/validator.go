package automation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"replydesk.app/server/internal/model"
)

const (
	MaxTriggerTextLen = 500
	// Instagram rejects outgoing messages above this length.
	MaxReplyTextLen = 2000
)

// ValidateCreate checks a new rule. trigger_text and reply_text are required,
// everything else falls back to its default. Every problem found is returned.
func ValidateCreate(in model.RuleInput) []string {
	var errs []string

	errs = append(errs, validateTriggerType(in.TriggerType)...)

	if in.TriggerText == nil {
		errs = append(errs, "trigger_text is required")
	} else {
		errs = append(errs, validateText("trigger_text", *in.TriggerText, MaxTriggerTextLen)...)
	}

	if in.ReplyText == nil {
		errs = append(errs, "reply_text is required")
	} else {
		errs = append(errs, validateText("reply_text", *in.ReplyText, MaxReplyTextLen)...)
	}

	errs = append(errs, validateMatchType(in.MatchType)...)

	if len(errs) == 0 && in.MatchType != nil && model.MatchType(*in.MatchType) == model.MatchTypeRegex {
		errs = append(errs, validatePattern(*in.TriggerText)...)
	}

	return errs
}

// ValidateUpdate checks only the fields present in in. When the rule that would
// result is a regex rule and either its pattern or its match type changes, the
// pattern must compile.
func ValidateUpdate(in model.RuleInput, existing model.AutomationRule) []string {
	var errs []string

	errs = append(errs, validateTriggerType(in.TriggerType)...)
	if in.TriggerText != nil {
		errs = append(errs, validateText("trigger_text", *in.TriggerText, MaxTriggerTextLen)...)
	}
	if in.ReplyText != nil {
		errs = append(errs, validateText("reply_text", *in.ReplyText, MaxReplyTextLen)...)
	}
	errs = append(errs, validateMatchType(in.MatchType)...)

	if len(errs) > 0 {
		return errs
	}

	if in.TriggerText == nil && in.MatchType == nil {
		return nil
	}

	merged := existing.Apply(in)
	if merged.MatchType == model.MatchTypeRegex {
		errs = append(errs, validatePattern(merged.TriggerText)...)
	}

	return errs
}

func validateTriggerType(v *string) []string {
	if v == nil || model.TriggerType(*v).Valid() {
		return nil
	}
	return []string{fmt.Sprintf("trigger_type must be one of comment, dm, both (got %q)", *v)}
}

func validateMatchType(v *string) []string {
	if v == nil || model.MatchType(*v).Valid() {
		return nil
	}
	return []string{fmt.Sprintf("match_type must be one of exact, contains, prefix, suffix, regex (got %q)", *v)}
}

func validateText(field, v string, maxLen int) []string {
	if strings.TrimSpace(v) == "" {
		return []string{field + " must not be empty"}
	}
	if utf8.RuneCountInString(v) > maxLen {
		return []string{fmt.Sprintf("%s must be at most %d characters", field, maxLen)}
	}
	return nil
}

func validatePattern(pattern string) []string {
	if _, err := compilePattern(pattern); err != nil {
		return []string{fmt.Sprintf("trigger_text is not a valid regular expression: %v", err)}
	}
	return nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + strings.TrimSpace(pattern))
}
