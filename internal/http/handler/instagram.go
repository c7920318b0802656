package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/dto"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/service"
)

type InstagramHandler struct {
	instagramService service.InstagramService
}

func NewInstagramHandler(instagramService service.InstagramService) *InstagramHandler {
	return &InstagramHandler{instagramService: instagramService}
}

func (h *InstagramHandler) AuthURL(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthURLResponse{
		AuthorizationURL: h.instagramService.AuthorizationURL(state),
		State:            state,
	})
}

func (h *InstagramHandler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InstagramConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	account, err := h.instagramService.Connect(ctx, middleware.CurrentUser(c).ID, req.Code)
	if err != nil {
		respondError(c, err, "failed to connect instagram")
		return
	}

	c.JSON(http.StatusOK, dto.InstagramAccountResponse{Account: *account})
}

func (h *InstagramHandler) Status(c *gin.Context) {
	status, err := h.instagramService.Status(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, err, "failed to get instagram status")
		return
	}

	c.JSON(http.StatusOK, dto.InstagramStatusResponse{
		Connected: status.Connected,
		Account:   status.Account,
	})
}

func (h *InstagramHandler) Disconnect(c *gin.Context) {
	if err := h.instagramService.Disconnect(c.Request.Context(), middleware.CurrentUser(c).ID); err != nil {
		respondError(c, err, "failed to disconnect instagram")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
