package handler_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/internal/http/handler"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

var _ = Describe("InstagramHandler", func() {
	var (
		router *gin.Engine
		svc    *mockInstagramService
	)

	BeforeEach(func() {
		svc = &mockInstagramService{}
		var api *gin.RouterGroup
		router, api = newSessionRouter()
		h := handler.NewInstagramHandler(svc)
		api.GET("/instagram/auth-url", h.AuthURL)
		api.POST("/instagram/connect", h.Connect)
		api.GET("/instagram/status", h.Status)
		api.DELETE("/instagram", h.Disconnect)
	})

	It("returns an authorization url carrying the state", func() {
		w := doJSON(router, http.MethodGet, "/instagram/auth-url", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["state"]).NotTo(BeEmpty())
		Expect(resp["authorization_url"]).To(HaveSuffix(resp["state"].(string)))
	})

	It("connects the session user's account", func() {
		svc.connectFn = func(_ context.Context, userID int64, code string) (*model.InstagramAccount, error) {
			Expect(userID).To(Equal(sessionUserID))
			Expect(code).To(Equal("abc"))
			return &model.InstagramAccount{ID: 5, UserID: userID, Username: "kahvila", AccessToken: "secret"}, nil
		}

		w := doJSON(router, http.MethodPost, "/instagram/connect", map[string]any{"code": "abc"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).NotTo(ContainSubstring("secret"))
		Expect(decode(w)["account"].(map[string]any)["username"]).To(Equal("kahvila"))
	})

	It("returns 400 without a code", func() {
		w := doJSON(router, http.MethodPost, "/instagram/connect", map[string]any{})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 when Instagram rejects the code", func() {
		svc.connectFn = func(_ context.Context, _ int64, _ string) (*model.InstagramAccount, error) {
			return nil, fmt.Errorf("%w: code expired", service.ErrInvalidCode)
		}

		w := doJSON(router, http.MethodPost, "/instagram/connect", map[string]any{"code": "abc"})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 502 when Instagram is down", func() {
		svc.connectFn = func(_ context.Context, _ int64, _ string) (*model.InstagramAccount, error) {
			return nil, fmt.Errorf("%w: 503", service.ErrInstagramUnavailable)
		}

		w := doJSON(router, http.MethodPost, "/instagram/connect", map[string]any{"code": "abc"})

		Expect(w.Code).To(Equal(http.StatusBadGateway))
	})

	It("reports a disconnected status without an account", func() {
		w := doJSON(router, http.MethodGet, "/instagram/status", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["connected"]).To(BeFalse())
		Expect(resp).NotTo(HaveKey("account"))
	})

	It("disconnects", func() {
		called := false
		svc.disconnectFn = func(_ context.Context, userID int64) error {
			called = userID == sessionUserID
			return nil
		}

		w := doJSON(router, http.MethodDelete, "/instagram", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(called).To(BeTrue())
	})
})
