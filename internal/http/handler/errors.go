package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/service"
)

// respondError maps service sentinels to their status. Anything unrecognised is
// logged and answered with a generic 500 carrying fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "errors": verr.Errors})
	case errors.Is(err, service.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "rule not found"})
	case errors.Is(err, service.ErrQueueItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "queue item not found or already resolved"})
	case errors.Is(err, service.ErrSourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "source message not found"})
	case errors.Is(err, service.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authorization code"})
	case errors.Is(err, service.ErrInstagramUnavailable):
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "instagram is unavailable, try again later"})
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
