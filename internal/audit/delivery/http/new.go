package http

import (
	"strconv"

	"arkive-client/internal/audit"
	"arkive-client/internal/model"
	"arkive-client/pkg/log"
	"arkive-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho audit HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc audit.UseCase
}

// New - Factory
func New(l log.Logger, uc audit.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	r.Group("/api/v1").GET("/audit", h.List)
}

type auditLogResp struct {
	EventType string            `json:"event_type"`
	Category  string            `json:"category"`
	UserID    string            `json:"user_id"`
	Timestamp response.DateTime `json:"timestamp"`
	Details   map[string]any    `json:"details,omitempty"`
}

type listResp struct {
	Logs    []auditLogResp `json:"logs"`
	Total   int            `json:"total"`
	Summary map[string]int `json:"summary"`
}

// List returns recent audit logs. Query "limit" defaults to 20.
func (h *handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	logs := h.uc.List(c.Request.Context(), limit)
	sum := h.uc.Summarize(logs)

	out := listResp{
		Logs:    make([]auditLogResp, 0, len(logs)),
		Total:   sum.Total,
		Summary: make(map[string]int, len(sum.Counts)),
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, newAuditLogResp(l))
	}
	for cat, n := range sum.Counts {
		out.Summary[string(cat)] = n
	}
	response.OK(c, out)
}

func newAuditLogResp(l model.AuditLog) auditLogResp {
	return auditLogResp{
		EventType: l.EventType,
		Category:  string(l.Category()),
		UserID:    l.UserID,
		Timestamp: response.DateTime(l.Timestamp.Time),
		Details:   l.Details,
	}
}
