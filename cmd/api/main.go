package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arkive-client/config"
	configKafka "arkive-client/config/kafka"
	"arkive-client/internal/activity"
	activityProducer "arkive-client/internal/activity/delivery/kafka/producer"
	"arkive-client/internal/app"
	"arkive-client/internal/httpserver"
	"arkive-client/pkg/backend"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"

	"golang.org/x/sync/errgroup"
)

// @title       Arkive Client API
// @description Local view-model API of the Arkive RAG chat client.
// @version     1
// @host        127.0.0.1:8090
// @schemes     http
// @BasePath    /
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})
	defer logger.Sync()

	// 3. Context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Backend client
	be, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Backend.Timeout,
			Retries:   cfg.Backend.Retries,
			RetryWait: cfg.Backend.RetryWait,
		}),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize backend client: %v", err)
		return
	}
	logger.Infof(ctx, "Backend client initialized for %s", cfg.Backend.BaseURL)

	// 5. Kafka activity events (optional)
	events := activity.NewNop()
	readyChecks := map[string]func() error{}
	if cfg.Kafka.Enabled() {
		producer, err := configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.Disconnect()
		events = activityProducer.New(logger, producer)
		readyChecks["kafka"] = configKafka.HealthCheck
		logger.Infof(ctx, "Kafka producer initialized (topic %s)", cfg.Kafka.Topic)
	} else {
		logger.Info(ctx, "Kafka not configured, activity events disabled")
	}

	// 6. Domains
	a, err := app.New(app.Config{
		Logger:  logger,
		Config:  cfg,
		Backend: be,
		Events:  events,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize client: %v", err)
		return
	}
	defer a.Wait()

	// 7. HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Domain Configuration
		ChatUC:       a.ChatUC,
		DocumentUC:   a.DocumentUC,
		ComplianceUC: a.ComplianceUC,
		AuditUC:      a.AuditUC,

		// Monitoring Configuration
		ReadyChecks: readyChecks,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	g.Go(func() error {
		// Warm the library view so the first page load does not wait on the backend.
		a.DocumentUC.List(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server error: %v", err)
		return
	}
	logger.Info(ctx, "Server stopped gracefully")
}
