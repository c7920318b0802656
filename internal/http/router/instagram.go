package router

import (
	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/handler"
	"replydesk.app/server/internal/http/handler/webhook"
)

func InstagramRouter(rg *gin.RouterGroup, h *handler.InstagramHandler) {
	rg.GET("/auth-url", h.AuthURL)
	rg.POST("/connect", h.Connect)
	rg.GET("/status", h.Status)
	rg.DELETE("", h.Disconnect)
}

// WebhookRouter is public; requests authenticate with the payload signature.
func WebhookRouter(rg *gin.RouterGroup, h *webhook.InstagramWebhookHandler) {
	rg.GET("/instagram", h.Verify)
	rg.POST("/instagram", h.HandleEvent)
}
