package httpserver

import (
	"context"

	audithttp "arkive-client/internal/audit/delivery/http"
	chathttp "arkive-client/internal/chat/delivery/http"
	compliancehttp "arkive-client/internal/compliance/delivery/http"
	documenthttp "arkive-client/internal/document/delivery/http"
	"arkive-client/internal/middleware"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	root := srv.gin.Group("")
	chathttp.New(srv.l, srv.chatUC, srv.complianceUC).RegisterRoutes(root)
	documenthttp.New(srv.l, srv.documentUC, srv.chatUC).RegisterRoutes(root)
	compliancehttp.New(srv.l, srv.complianceUC).RegisterRoutes(root)
	audithttp.New(srv.l, srv.auditUC).RegisterRoutes(root)

	srv.l.Infof(context.Background(), "Routes registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
