package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"replydesk.app/server/common/llm"
	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/automation"
	"replydesk.app/server/internal/model"
)

type SuggestionResponse struct {
	Reply string `json:"reply" jsonschema_description:"The reply to send, in the customer's language. Empty when no reply should be sent."`
	Skip  bool   `json:"skip" jsonschema_description:"True for spam, abuse or messages that need a human"`
}

var suggestionSchema = llm.GenerateSchema[SuggestionResponse]()

const suggestionSystemPrompt = `You draft replies for a small business answering its Instagram direct messages and comments.

Write as the business, friendly and brief:
- Answer in the language the customer wrote in. Most customers write Finnish or English.
- At most three sentences. No hashtags, no links you were not given.
- Never invent prices, opening hours, stock or policies. If the answer needs facts you do not have, invite the customer to send a DM (for comments) or say someone will get back to them (for DMs).
- Set skip=true for spam, abuse, or anything a human must handle.`

type LLMSuggester struct {
	llm       llm.Client
	maxTokens int
}

func NewLLMSuggester(client llm.Client, maxTokens int) *LLMSuggester {
	return &LLMSuggester{llm: client, maxTokens: maxTokens}
}

func (s *LLMSuggester) Suggest(ctx context.Context, item model.InboundItem) (string, error) {
	text := strings.TrimSpace(item.Text)
	if text == "" {
		return "", nil
	}

	var response SuggestionResponse
	start := time.Now()

	resp, err := s.llm.Chat(ctx, llm.Request{
		SystemPrompt: suggestionSystemPrompt,
		UserPrompt:   buildSuggestionPrompt(item),
		SchemaName:   "reply_suggestion",
		Schema:       suggestionSchema,
		MaxTokens:    s.maxTokens,
		Temperature:  llm.Temp(0.4),
	}, &response)
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "reply suggested",
		"model", s.llm.Model(),
		"skip", response.Skip,
		"prompt_tokens", resp.PromptTokens,
		"completion_tokens", resp.CompletionTokens,
		"latency_ms", time.Since(start).Milliseconds())

	if response.Skip {
		return "", nil
	}

	reply := strings.TrimSpace(response.Reply)
	if len([]rune(reply)) > automation.MaxReplyTextLen {
		return "", fmt.Errorf("suggested reply exceeds %d characters", automation.MaxReplyTextLen)
	}
	return reply, nil
}

func buildSuggestionPrompt(item model.InboundItem) string {
	var sb strings.Builder

	switch item.Channel {
	case model.ChannelComment:
		sb.WriteString("A customer commented on one of our posts")
	default:
		sb.WriteString("A customer sent us a direct message")
	}
	if item.SenderUsername != nil && *item.SenderUsername != "" {
		fmt.Fprintf(&sb, " (@%s)", *item.SenderUsername)
	}
	sb.WriteString(":\n\n")
	sb.WriteString(logger.Truncate(strings.TrimSpace(item.Text), 2000))

	return sb.String()
}
