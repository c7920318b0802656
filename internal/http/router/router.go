package router

import (
	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/handler"
	"replydesk.app/server/internal/http/handler/webhook"
	"replydesk.app/server/internal/http/middleware"
	"replydesk.app/server/internal/service"
)

type RouterConfig struct {
	DashboardURL         string
	IsProduction         bool
	InstagramAppSecret   string
	InstagramVerifyToken string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	webhookHandler := webhook.NewInstagramWebhookHandler(
		services.Instagram(),
		services.Inbound(),
		cfg.InstagramAppSecret,
		cfg.InstagramVerifyToken,
	)
	WebhookRouter(router.Group("/webhooks"), webhookHandler)

	v1 := router.Group("/api/v1", middleware.RequireSession(services.Auth()))
	{
		RuleRouter(v1.Group("/automation/rules"), handler.NewRuleHandler(services.Rules()))

		AutoReplyRouter(v1.Group("/auto-reply"),
			handler.NewQueueHandler(services.Queue()),
			handler.NewSettingsHandler(services.Settings()),
		)

		InstagramRouter(v1.Group("/integrations/instagram"), handler.NewInstagramHandler(services.Instagram()))
	}
}
