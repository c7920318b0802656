package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/dto"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

type RuleHandler struct {
	ruleService service.RuleService
}

func NewRuleHandler(ruleService service.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

func (h *RuleHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireOwner(c, c.Query("user_id"))
	if !ok {
		return
	}

	rules, err := h.ruleService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list rules")
		return
	}
	if rules == nil {
		rules = []model.AutomationRule{}
	}

	c.JSON(http.StatusOK, dto.RulesResponse{Rules: rules})
}

func (h *RuleHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, ok := middleware.RequireOwner(c, req.UserID.String())
	if !ok {
		return
	}

	rule, err := h.ruleService.Create(ctx, userID, req.Input())
	if err != nil {
		respondError(c, err, "failed to create rule")
		return
	}

	c.JSON(http.StatusCreated, dto.RuleResponse{Rule: *rule})
}

// Update is scoped to the session user; a rule of another account is a 404.
func (h *RuleHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rule, err := h.ruleService.Update(ctx, id, middleware.CurrentUser(c).ID, req.Input())
	if err != nil {
		respondError(c, err, "failed to update rule")
		return
	}

	c.JSON(http.StatusOK, dto.RuleResponse{Rule: *rule})
}

func (h *RuleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ruleService.Delete(c.Request.Context(), id, middleware.CurrentUser(c).ID); err != nil {
		respondError(c, err, "failed to delete rule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
