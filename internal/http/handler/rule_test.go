package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"replydesk.app/server/internal/http/handler"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

var _ = Describe("RuleHandler", func() {
	var (
		router *gin.Engine
		svc    *mockRuleService
	)

	BeforeEach(func() {
		svc = &mockRuleService{}
		var api *gin.RouterGroup
		router, api = newSessionRouter()
		h := handler.NewRuleHandler(svc)
		api.GET("/rules", h.List)
		api.POST("/rules", h.Create)
		api.PUT("/rules/:id", h.Update)
		api.DELETE("/rules/:id", h.Delete)
	})

	Describe("List", func() {
		It("returns the caller's rules", func() {
			svc.listFn = func(_ context.Context, userID int64) ([]model.AutomationRule, error) {
				Expect(userID).To(Equal(sessionUserID))
				return []model.AutomationRule{{ID: 7, UserID: userID, TriggerText: "price"}}, nil
			}

			w := doJSON(router, http.MethodGet, "/rules?user_id=42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			rules := decode(w)["rules"].([]any)
			Expect(rules).To(HaveLen(1))
			Expect(rules[0].(map[string]any)["id"]).To(Equal("7"))
		})

		It("returns an empty array rather than null", func() {
			w := doJSON(router, http.MethodGet, "/rules?user_id=42", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"rules":[]`))
		})

		It("returns 400 without user_id", func() {
			w := doJSON(router, http.MethodGet, "/rules", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 403 for another account", func() {
			w := doJSON(router, http.MethodGet, "/rules?user_id=43", nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/rules?user_id=42", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Create", func() {
		It("returns 201 with the created rule", func() {
			svc.createFn = func(_ context.Context, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
				Expect(userID).To(Equal(sessionUserID))
				Expect(*in.TriggerText).To(Equal("price"))
				Expect(in.MatchType).To(BeNil())
				return &model.AutomationRule{ID: 9, UserID: userID, TriggerText: *in.TriggerText}, nil
			}

			w := doJSON(router, http.MethodPost, "/rules", map[string]any{
				"user_id":      "42",
				"trigger_text": "price",
				"reply_text":   "DM us",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			rule := decode(w)["rule"].(map[string]any)
			Expect(rule["id"]).To(Equal("9"))
		})

		It("accepts a numeric user_id", func() {
			w := doJSON(router, http.MethodPost, "/rules", map[string]any{
				"user_id":      42,
				"trigger_text": "price",
				"reply_text":   "DM us",
			})
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("returns 400 with every validation message", func() {
			svc.createFn = func(_ context.Context, _ int64, _ model.RuleInput) (*model.AutomationRule, error) {
				return nil, &service.ValidationError{Errors: []string{"trigger_text is required", "reply_text is required"}}
			}

			w := doJSON(router, http.MethodPost, "/rules", map[string]any{"user_id": "42"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			resp := decode(w)
			Expect(resp["error"]).To(Equal("validation failed"))
			Expect(resp["errors"]).To(ConsistOf("trigger_text is required", "reply_text is required"))
		})

		It("returns 400 on a malformed body", func() {
			w := doJSON(router, http.MethodPost, "/rules", `{`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 403 when creating for someone else", func() {
			w := doJSON(router, http.MethodPost, "/rules", map[string]any{"user_id": "7"})
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 500 when the service fails", func() {
			svc.createFn = func(_ context.Context, _ int64, _ model.RuleInput) (*model.AutomationRule, error) {
				return nil, errors.New("boom")
			}

			w := doJSON(router, http.MethodPost, "/rules", map[string]any{"user_id": "42"})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("failed to create rule"))
		})
	})

	Describe("Update", func() {
		It("passes the path id and session user", func() {
			svc.updateFn = func(_ context.Context, id, userID int64, in model.RuleInput) (*model.AutomationRule, error) {
				Expect(id).To(Equal(int64(7)))
				Expect(userID).To(Equal(sessionUserID))
				Expect(*in.IsActive).To(BeFalse())
				return &model.AutomationRule{ID: id, UserID: userID}, nil
			}

			w := doJSON(router, http.MethodPut, "/rules/7", map[string]any{"is_active": false})

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 for an unknown rule", func() {
			svc.updateFn = func(_ context.Context, _, _ int64, _ model.RuleInput) (*model.AutomationRule, error) {
				return nil, service.ErrRuleNotFound
			}

			w := doJSON(router, http.MethodPut, "/rules/7", map[string]any{})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a non-numeric id", func() {
			w := doJSON(router, http.MethodPut, "/rules/abc", map[string]any{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Delete", func() {
		It("returns success", func() {
			w := doJSON(router, http.MethodDelete, "/rules/7", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["success"]).To(BeTrue())
		})

		It("returns 404 for an unknown rule", func() {
			svc.deleteFn = func(_ context.Context, _, _ int64) error { return service.ErrRuleNotFound }

			w := doJSON(router, http.MethodDelete, "/rules/7", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
