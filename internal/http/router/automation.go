package router

import (
	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/handler"
)

func RuleRouter(rg *gin.RouterGroup, h *handler.RuleHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func AutoReplyRouter(rg *gin.RouterGroup, queue *handler.QueueHandler, settings *handler.SettingsHandler) {
	rg.GET("/queue", queue.List)
	rg.POST("/queue", queue.Enqueue)
	rg.POST("/queue/reject", queue.Reject)
	rg.GET("/logs", queue.Logs)

	rg.GET("/settings", settings.Get)
	rg.PUT("/settings", settings.Update)
}
