package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/common/logger"
	"replydesk.app/server/internal/service"
)

const signatureHeader = "X-Hub-Signature-256"

type InstagramWebhookHandler struct {
	instagramService service.InstagramService
	inboundService   service.InboundService
	appSecret        string
	verifyToken      string
}

func NewInstagramWebhookHandler(
	instagramService service.InstagramService,
	inboundService service.InboundService,
	appSecret string,
	verifyToken string,
) *InstagramWebhookHandler {
	return &InstagramWebhookHandler{
		instagramService: instagramService,
		inboundService:   inboundService,
		appSecret:        appSecret,
		verifyToken:      verifyToken,
	}
}

// Verify answers Meta's subscription handshake by echoing hub.challenge.
func (h *InstagramWebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")

	if mode != "subscribe" || h.verifyToken == "" ||
		!hmac.Equal([]byte(token), []byte(h.verifyToken)) {
		slog.WarnContext(c.Request.Context(), "instagram webhook verification rejected", "mode", mode)
		c.JSON(http.StatusForbidden, gin.H{"error": "verification failed"})
		return
	}

	c.String(http.StatusOK, c.Query("hub.challenge"))
}

func (h *InstagramWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if !validSignature(h.appSecret, body, c.GetHeader(signatureHeader)) {
		slog.WarnContext(ctx, "instagram webhook signature mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	sc := logger.StartSpan(ctx, "webhook.instagram")
	defer sc.End()
	ctx = sc.Context()

	var traceID *string
	if t := sc.TraceID(); t != "" {
		traceID = &t
	}

	var stored int
	for _, entry := range payload.Entry {
		n, err := h.processEntry(ctx, entry, traceID)
		stored += n
		if err != nil {
			sc.RecordError(err)
			slog.ErrorContext(ctx, "failed to process instagram webhook entry",
				"error", err,
				"ig_user_id", entry.ID,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
			return
		}
	}

	slog.InfoContext(ctx, "instagram webhook processed",
		"object", payload.Object,
		"entries", len(payload.Entry),
		"items", stored,
	)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *InstagramWebhookHandler) processEntry(ctx context.Context, entry webhookEntry, traceID *string) (int, error) {
	account, err := h.instagramService.ResolveAccount(ctx, entry.ID)
	if err != nil {
		if errors.Is(err, service.ErrInstagramNotConnected) {
			slog.WarnContext(ctx, "webhook for unconnected instagram account ignored", "ig_user_id", entry.ID)
			return 0, nil
		}
		return 0, fmt.Errorf("resolving account %s: %w", entry.ID, err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &account.UserID})

	var stored int
	for _, m := range entry.Messaging {
		// Echoes are the account's own outgoing messages.
		if m.Message == nil || m.Message.IsEcho || m.Sender.ID == entry.ID {
			continue
		}
		if strings.TrimSpace(m.Message.Text) == "" {
			continue
		}

		if _, err := h.inboundService.IngestMessage(ctx, service.InboundMessage{
			UserID:         account.UserID,
			MessageID:      m.Message.MID,
			ConversationID: m.Sender.ID,
			SenderID:       m.Sender.ID,
			Text:           m.Message.Text,
			ReceivedAt:     fromMillis(m.Timestamp),
		}, traceID); err != nil {
			return stored, fmt.Errorf("ingesting message %s: %w", m.Message.MID, err)
		}
		stored++
	}

	for _, change := range entry.Changes {
		if change.Field != "comments" {
			continue
		}
		v := change.Value
		if v.ID == "" || v.From.ID == entry.ID || strings.TrimSpace(v.Text) == "" {
			continue
		}

		var username *string
		if v.From.Username != "" {
			username = &v.From.Username
		}

		if _, err := h.inboundService.IngestComment(ctx, service.InboundComment{
			UserID:         account.UserID,
			CommentID:      v.ID,
			MediaID:        v.Media.ID,
			SenderID:       v.From.ID,
			SenderUsername: username,
			Text:           v.Text,
			ReceivedAt:     fromEntryTime(entry.Time),
		}, traceID); err != nil {
			return stored, fmt.Errorf("ingesting comment %s: %w", v.ID, err)
		}
		stored++
	}

	return stored, nil
}

// validSignature checks the sha256=<hex> HMAC Meta computes over the raw body.
func validSignature(secret string, body []byte, header string) bool {
	if secret == "" {
		return false
	}
	sig, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Now().UTC()
	}
	return time.UnixMilli(ms).UTC()
}

// entryMillisThreshold is 2001-09-09 in Unix seconds; larger values are milliseconds.
const entryMillisThreshold = 1_000_000_000_000

// fromEntryTime reads entry.time, which Meta documents in seconds for change
// notifications but has also been observed in milliseconds.
func fromEntryTime(t int64) time.Time {
	if t >= entryMillisThreshold {
		return fromMillis(t)
	}
	if t <= 0 {
		return time.Now().UTC()
	}
	return time.Unix(t, 0).UTC()
}

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []messagingEvent `json:"messaging"`
	Changes   []commentChange  `json:"changes"`
}

type messagingEvent struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Timestamp int64 `json:"timestamp"`
	Message   *struct {
		MID    string `json:"mid"`
		Text   string `json:"text"`
		IsEcho bool   `json:"is_echo"`
	} `json:"message"`
}

type commentChange struct {
	Field string `json:"field"`
	Value struct {
		ID   string `json:"id"`
		Text string `json:"text"`
		From struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"from"`
		Media struct {
			ID string `json:"id"`
		} `json:"media"`
	} `json:"value"`
}
