package router

import (
	"github.com/gin-gonic/gin"

	"replydesk.app/server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/url", h.GetAuthURL)
	rg.POST("/exchange", h.Exchange)
	rg.GET("/validate", h.ValidateSession)
	rg.POST("/logout-session", h.LogoutSession)
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}
