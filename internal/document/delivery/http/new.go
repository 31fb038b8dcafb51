package http

import (
	"arkive-client/internal/chat"
	"arkive-client/internal/document"
	"arkive-client/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho document HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l      log.Logger
	uc     document.UseCase
	chatUC chat.UseCase
}

// New - Factory. Uploads go through the chat orchestrator so the outcome lands in the transcript.
func New(l log.Logger, uc document.UseCase, chatUC chat.UseCase) Handler {
	return &handler{l: l, uc: uc, chatUC: chatUC}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/documents", h.List)
		api.POST("/documents", h.Upload)
	}
}
