package httpserver

import (
	"errors"

	"arkive-client/internal/audit"
	"arkive-client/internal/chat"
	"arkive-client/internal/compliance"
	"arkive-client/internal/document"
	"arkive-client/pkg/log"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Domain Configuration
	chatUC       chat.UseCase
	documentUC   document.UseCase
	complianceUC compliance.UseCase
	auditUC      audit.UseCase

	// Monitoring Configuration
	readyChecks map[string]func() error
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Domain Configuration
	ChatUC       chat.UseCase
	DocumentUC   document.UseCase
	ComplianceUC compliance.UseCase
	AuditUC      audit.UseCase

	// ReadyChecks are optional named dependency checks reported by /ready.
	ReadyChecks map[string]func() error
}

// New creates a new HTTPServer instance with the provided configuration and maps its routes.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		// Server Configuration
		l:           cfg.Logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Domain Configuration
		chatUC:       cfg.ChatUC,
		documentUC:   cfg.DocumentUC,
		complianceUC: cfg.ComplianceUC,
		auditUC:      cfg.AuditUC,

		// Monitoring Configuration
		readyChecks: cfg.ReadyChecks,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Domain Configuration
	if srv.chatUC == nil {
		return errors.New("chatUC is required")
	}
	if srv.documentUC == nil {
		return errors.New("documentUC is required")
	}
	if srv.complianceUC == nil {
		return errors.New("complianceUC is required")
	}
	if srv.auditUC == nil {
		return errors.New("auditUC is required")
	}

	return nil
}
