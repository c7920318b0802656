package webhook_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/internal/http/handler/webhook"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

const appSecret = "app-secret"

type mockInstagramService struct {
	service.InstagramService
	accounts map[string]*model.InstagramAccount
}

func (m *mockInstagramService) ResolveAccount(_ context.Context, igUserID string) (*model.InstagramAccount, error) {
	if acc, ok := m.accounts[igUserID]; ok {
		return acc, nil
	}
	return nil, service.ErrInstagramNotConnected
}

type mockInboundService struct {
	messages []service.InboundMessage
	comments []service.InboundComment
	traceIDs []*string
	err      error
}

func (m *mockInboundService) IngestMessage(_ context.Context, in service.InboundMessage, traceID *string) (*model.InstagramMessage, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.messages = append(m.messages, in)
	m.traceIDs = append(m.traceIDs, traceID)
	return &model.InstagramMessage{MessageID: in.MessageID}, nil
}

func (m *mockInboundService) IngestComment(_ context.Context, in service.InboundComment, traceID *string) (*model.InstagramComment, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.comments = append(m.comments, in)
	m.traceIDs = append(m.traceIDs, traceID)
	return &model.InstagramComment{CommentID: in.CommentID}, nil
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

var _ = Describe("InstagramWebhookHandler", func() {
	var (
		router  *gin.Engine
		ig      *mockInstagramService
		inbound *mockInboundService
	)

	post := func(body string, signature string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/instagram", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if signature != "" {
			req.Header.Set("X-Hub-Signature-256", signature)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		ig = &mockInstagramService{accounts: map[string]*model.InstagramAccount{
			"1784": {ID: 5, UserID: 42, IGUserID: "1784"},
		}}
		inbound = &mockInboundService{}
		router = gin.New()
		h := webhook.NewInstagramWebhookHandler(ig, inbound, appSecret, "verify-me")
		router.GET("/webhooks/instagram", h.Verify)
		router.POST("/webhooks/instagram", h.HandleEvent)
	})

	Describe("Verify", func() {
		It("echoes the challenge for the right token", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/webhooks/instagram?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=12345", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("12345"))
		})

		It("returns 403 for a wrong token", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/webhooks/instagram?hub.mode=subscribe&hub.verify_token=nope&hub.challenge=12345", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("HandleEvent", func() {
		It("ingests direct messages and skips echoes", func() {
			body := `{"object":"instagram","entry":[{"id":"1784","time":1700000000,"messaging":[
				{"sender":{"id":"u1"},"recipient":{"id":"1784"},"timestamp":1700000000123,"message":{"mid":"m1","text":"price?"}},
				{"sender":{"id":"1784"},"recipient":{"id":"u1"},"timestamp":1700000000456,"message":{"mid":"m2","text":"10 euros","is_echo":true}}
			]}]}`

			w := post(body, sign([]byte(body)))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(inbound.messages).To(HaveLen(1))
			msg := inbound.messages[0]
			Expect(msg.UserID).To(Equal(int64(42)))
			Expect(msg.MessageID).To(Equal("m1"))
			Expect(msg.ConversationID).To(Equal("u1"))
			Expect(msg.ReceivedAt.UnixMilli()).To(Equal(int64(1700000000123)))
		})

		It("ingests comments", func() {
			body := `{"object":"instagram","entry":[{"id":"1784","time":1700000000,"changes":[
				{"field":"comments","value":{"id":"c1","text":"link?","from":{"id":"u2","username":"mikko"},"media":{"id":"p1"}}},
				{"field":"mentions","value":{"id":"c2","text":"hey"}}
			]}]}`

			w := post(body, sign([]byte(body)))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(inbound.comments).To(HaveLen(1))
			c := inbound.comments[0]
			Expect(c.CommentID).To(Equal("c1"))
			Expect(c.MediaID).To(Equal("p1"))
			Expect(*c.SenderUsername).To(Equal("mikko"))
			Expect(c.ReceivedAt).To(Equal(time.Unix(1700000000, 0).UTC()))
		})

		It("accepts comment entry times sent in milliseconds", func() {
			body := `{"object":"instagram","entry":[{"id":"1784","time":1700000000456,"changes":[
				{"field":"comments","value":{"id":"c3","text":"open today?","from":{"id":"u2"},"media":{"id":"p1"}}}
			]}]}`

			w := post(body, sign([]byte(body)))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(inbound.comments).To(HaveLen(1))
			Expect(inbound.comments[0].ReceivedAt.UnixMilli()).To(Equal(int64(1700000000456)))
		})

		It("ignores entries for accounts that are not connected", func() {
			body := `{"object":"instagram","entry":[{"id":"9999","messaging":[
				{"sender":{"id":"u1"},"message":{"mid":"m1","text":"hi"}}]}]}`

			w := post(body, sign([]byte(body)))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(inbound.messages).To(BeEmpty())
		})

		It("returns 401 for a bad signature", func() {
			body := `{"object":"instagram","entry":[]}`

			w := post(body, "sha256=deadbeef")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 without a signature", func() {
			w := post(`{"object":"instagram","entry":[]}`, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 for a malformed body", func() {
			body := `{"entry":`
			w := post(body, sign([]byte(body)))
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 so Meta redelivers when storing fails", func() {
			inbound.err = errors.New("db down")
			body := `{"object":"instagram","entry":[{"id":"1784","messaging":[
				{"sender":{"id":"u1"},"message":{"mid":"m1","text":"hi"}}]}]}`

			w := post(body, sign([]byte(body)))

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
