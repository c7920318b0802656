package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/dto"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/service"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := middleware.RequireOwner(c, c.Query("user_id"))
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to get settings")
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: *settings})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, ok := middleware.RequireOwner(c, req.UserID.String())
	if !ok {
		return
	}

	settings, err := h.settingsService.Update(ctx, userID, req.Update())
	if err != nil {
		respondError(c, err, "failed to update settings")
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: *settings})
}
