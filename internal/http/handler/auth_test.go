package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/internal/http/handler"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		svc = &mockAuthService{}
		router = gin.New()
		h := handler.NewAuthHandler(svc, "http://localhost:3000", false)
		router.GET("/auth/url", h.GetAuthURL)
		router.POST("/auth/exchange", h.Exchange)
		router.GET("/auth/validate", h.ValidateSession)
		router.POST("/auth/logout-session", h.LogoutSession)
		router.GET("/auth/me", h.Me)
		router.POST("/auth/logout", h.Logout)
	})

	It("returns an authorization url and forwards the login hint", func() {
		var hinted service.AuthURLOptions
		svc.authURLFn = func(state string, opts ...service.AuthURLOption) (string, error) {
			for _, o := range opts {
				o(&hinted)
			}
			return "https://auth/" + state, nil
		}

		w := doJSON(router, http.MethodGet, "/auth/url?login_hint=aino@kahvila.fi", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["authorization_url"]).To(HavePrefix("https://auth/"))
		Expect(hinted.LoginHint).To(Equal("aino@kahvila.fi"))
	})

	Describe("Exchange", func() {
		It("returns the user and session and sets the cookie", func() {
			svc.handleCallbackFn = func(_ context.Context, code string) (*service.CallbackResult, error) {
				Expect(code).To(Equal("code-1"))
				return &service.CallbackResult{
					User:    &model.User{ID: 42, Name: "Aino", Email: "aino@kahvila.fi"},
					Session: &model.Session{ID: 900, UserID: 42},
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/auth/exchange", map[string]any{"code": "code-1"})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["session_id"]).To(Equal("900"))
			Expect(resp["user"].(map[string]any)["id"]).To(Equal("42"))
			Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=900"))
		})

		It("returns 400 for a rejected code", func() {
			svc.handleCallbackFn = func(_ context.Context, _ string) (*service.CallbackResult, error) {
				return nil, service.ErrInvalidCode
			}

			w := doJSON(router, http.MethodPost, "/auth/exchange", map[string]any{"code": "bad"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 without a code", func() {
			w := doJSON(router, http.MethodPost, "/auth/exchange", map[string]any{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ValidateSession", func() {
		It("returns the user for a live session", func() {
			w := doJSON(router, http.MethodGet, "/auth/validate", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["user"].(map[string]any)["email"]).To(Equal("aino@kahvila.fi"))
		})

		It("returns 401 for an unknown session", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
			req.Header.Set(middleware.SessionIDHeader, "1")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 without the header", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	It("deletes the session named in the body", func() {
		w := doJSON(router, http.MethodPost, "/auth/logout-session", map[string]any{"session_id": "900"})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.loggedOut).To(ConsistOf(int64(900)))
	})

	It("reads the cookie for Me", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "900"})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["id"]).To(Equal("42"))
	})

	It("clears the cookie on logout", func() {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(""))
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "900"})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.loggedOut).To(ConsistOf(int64(900)))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring("Max-Age=0"))
	})
})
