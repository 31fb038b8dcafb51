package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/chat", h.GetChat)
		api.POST("/chat/messages", h.SendMessage)
		api.POST("/chat/new", h.NewChat)
		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions/:session_id/load", h.LoadSession)
	}
}
