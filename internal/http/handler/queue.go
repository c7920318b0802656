package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/dto"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/model"
	"replydesk.app/server/internal/service"
)

type QueueHandler struct {
	queueService service.QueueService
}

func NewQueueHandler(queueService service.QueueService) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

func (h *QueueHandler) List(c *gin.Context) {
	userID, ok := middleware.RequireOwner(c, c.Query("user_id"))
	if !ok {
		return
	}

	items, err := h.queueService.ListPending(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list queue")
		return
	}
	if items == nil {
		items = []model.QueueItem{}
	}

	c.JSON(http.StatusOK, dto.QueueResponse{Queue: items})
}

func (h *QueueHandler) Enqueue(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, ok := middleware.RequireOwner(c, req.UserID.String())
	if !ok {
		return
	}

	var sourceID int64
	if req.SourceID != "" {
		parsed, err := req.SourceID.Int64()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source_id"})
			return
		}
		sourceID = parsed
	}

	if _, err := h.queueService.Enqueue(ctx, service.EnqueueParams{
		UserID:     userID,
		ItemType:   model.Channel(req.ItemType),
		SourceID:   sourceID,
		Suggestion: req.AISuggestion,
	}); err != nil {
		respondError(c, err, "failed to enqueue suggestion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *QueueHandler) Reject(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.QueueItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "queue_item_id is required"})
		return
	}
	itemID, err := req.QueueItemID.Int64()
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid queue_item_id"})
		return
	}

	userID, ok := middleware.RequireOwner(c, req.UserID.String())
	if !ok {
		return
	}

	item, err := h.queueService.Reject(ctx, itemID, userID, req.Reason)
	if err != nil {
		respondError(c, err, "failed to reject queue item")
		return
	}

	c.JSON(http.StatusOK, dto.RejectResponse{Success: true, Item: *item})
}

func (h *QueueHandler) Logs(c *gin.Context) {
	userID, ok := middleware.RequireOwner(c, c.Query("user_id"))
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.queueService.Logs(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err, "failed to list reply logs")
		return
	}
	if logs == nil {
		logs = []model.ReplyLog{}
	}

	c.JSON(http.StatusOK, dto.LogsResponse{Logs: logs})
}
