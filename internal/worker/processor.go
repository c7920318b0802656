package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"replydesk.app/server/common/id"
	"replydesk.app/server/common/llm"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/automation"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/store"
)

// Processor decides what, if anything, to suggest for an inbound item:
// settings gate, redelivery guard, rule match, then the optional AI fallback.
type Processor struct {
	suggester Suggester
}

// NewProcessor accepts a nil suggester; unmatched items are then left alone.
func NewProcessor(suggester Suggester) *Processor {
	return &Processor{suggester: suggester}
}

func (p *Processor) Process(ctx context.Context, item model.InboundItem, sp StoreProvider) (*model.QueueItem, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "replydesk.worker.processor"})

	settings, err := sp.Settings().Get(ctx, item.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		settings = &model.AutoReplySettings{UserID: item.UserID}
	}

	if !settings.Allows(item.Channel) {
		slog.DebugContext(ctx, "auto-reply disabled for channel, skipping")
		return nil, nil
	}

	pending, err := sp.Queue().HasPending(ctx, item.UserID, item.PlatformID)
	if err != nil {
		return nil, fmt.Errorf("checking pending queue: %w", err)
	}
	if pending {
		slog.InfoContext(ctx, "suggestion already pending for item, skipping")
		return nil, nil
	}

	rules, err := sp.Rules().ListActiveForChannel(ctx, item.UserID, item.Channel)
	if err != nil {
		return nil, fmt.Errorf("listing active rules: %w", err)
	}

	var (
		reply  string
		ruleID *int64
	)

	if rule := automation.Match(item.Text, item.Channel, rules); rule != nil {
		reply = rule.ReplyText
		ruleID = &rule.ID
		slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{RuleID: &rule.ID}),
			"rule matched", "match_type", rule.MatchType)
	} else {
		reply, err = p.suggest(ctx, item, settings)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(reply) == "" {
		return nil, nil
	}

	queued := automation.NewQueueItem(id.New(), item, reply, ruleID)
	if err := sp.Queue().Create(ctx, &queued); err != nil {
		return nil, fmt.Errorf("creating queue item: %w", err)
	}
	return &queued, nil
}

// suggest returns "" when AI suggestions are off or the model declined. Only
// transient LLM failures are returned, so the message gets another attempt.
func (p *Processor) suggest(ctx context.Context, item model.InboundItem, settings *model.AutoReplySettings) (string, error) {
	if !settings.AISuggestionsEnabled || p.suggester == nil {
		slog.DebugContext(ctx, "no rule matched")
		return "", nil
	}

	reply, err := p.suggester.Suggest(ctx, item)
	if err != nil {
		if llm.IsRetryable(ctx, err) {
			return "", fmt.Errorf("suggesting reply: %w", err)
		}
		slog.WarnContext(ctx, "reply suggestion failed, leaving item unanswered", "error", err)
		return "", nil
	}
	return reply, nil
}
