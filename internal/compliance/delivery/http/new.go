package http

import (
	"arkive-client/internal/compliance"
	"arkive-client/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho compliance HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc compliance.UseCase
}

// New - Factory
func New(l log.Logger, uc compliance.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/compliance")
	{
		api.GET("", h.Get)
		api.POST("/file", h.SelectFile)
		api.POST("/check", h.Check)
		api.POST("/reset", h.Reset)
	}
}
