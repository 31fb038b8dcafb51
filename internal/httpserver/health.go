package httpserver

import (
	"net/http"

	"arkive-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Arkive client is up"
	HealthVersion = "1.0.0"
	ServiceName   = "arkive-client"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs the configured dependency checks.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	deps := gin.H{}
	for name, check := range srv.readyChecks {
		if err := check(); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %s not ready: %v", name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": name + " is not ready",
			})
			return
		}
		deps[name] = "connected"
	}
	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
