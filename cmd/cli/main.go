package main

import (
	"bufio"
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
	"arkive-client/internal/cli"
	"arkive-client/pkg/backend"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Logs go to the file sink only when configured; the terminal belongs to the REPL.
	logger := log.NewNopLogger()
	if cfg.Logger.FilePath != "" {
		logger = log.Init(log.ZapConfig{
			Level:    cfg.Logger.Level,
			Mode:     log.ModeProduction,
			Encoding: log.EncodingJSON,
			FilePath: cfg.Logger.FilePath,
			FileOnly: true,
		})
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := bufio.NewScanner(os.Stdin)

	owner := cfg.User.Name
	if owner == "" {
		owner, err = cli.PromptUsername(in, os.Stdout)
		if err != nil {
			return
		}
	}

	be, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Backend.Timeout,
			Retries:   cfg.Backend.Retries,
			RetryWait: cfg.Backend.RetryWait,
		}),
	})
	if err != nil {
		fmt.Println("Failed to initialize backend client: ", err)
		os.Exit(1)
	}

	events := activity.NewNop()
	if cfg.Kafka.Enabled() {
		producer, err := configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka unavailable, activity events disabled: %v", err)
		} else {
			defer configKafka.Disconnect()
			events = activityProducer.New(logger, producer)
		}
	}

	a, err := app.New(app.Config{
		Logger:  logger,
		Config:  cfg,
		Owner:   owner,
		Backend: be,
		Events:  events,
	})
	if err != nil {
		fmt.Println("Failed to start: ", err)
		os.Exit(1)
	}
	defer a.Wait()

	if err := cli.New(logger, a, in, os.Stdout).Run(ctx); err != nil {
		logger.Errorf(ctx, "REPL stopped: %v", err)
	}
}
