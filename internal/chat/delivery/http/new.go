package http

import (
	"arkive-client/internal/chat"
	"arkive-client/internal/compliance"
	"arkive-client/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho chat HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
	// complianceUC is optional; it only feeds the checking flag of the status.
	complianceUC compliance.UseCase
}

// New - Factory
func New(l log.Logger, uc chat.UseCase, complianceUC compliance.UseCase) Handler {
	return &handler{l: l, uc: uc, complianceUC: complianceUC}
}
