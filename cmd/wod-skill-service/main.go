// main package for the wod-skill-service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/book-expert/logger"
	"github.com/book-expert/wod-skill-service/internal/clock"
	"github.com/book-expert/wod-skill-service/internal/config"
	"github.com/book-expert/wod-skill-service/internal/content"
	"github.com/book-expert/wod-skill-service/internal/interaction"
	"github.com/book-expert/wod-skill-service/internal/server"
	"github.com/book-expert/wod-skill-service/internal/worker"
	"github.com/nats-io/nats.go"
)

const httpShutdownTimeout = 5 * time.Second

func setupLogger(logPath string) (*logger.Logger, error) {
	log, err := logger.New(logPath, "wod-skill-service.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	bootstrapLog, err := setupLogger(os.TempDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	cfg, err := config.Load(bootstrapLog)
	if err != nil {
		bootstrapLog.Error("Failed to load configuration: %v", err)

		return fmt.Errorf("failed to load configuration: %w", err)
	}

	finalLog, err := setupLogger(cfg.Paths.BaseLogsDir)
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing logger: %v\n", closeErr)
		}
	}()

	return serve(cfg, finalLog)
}

func serve(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	systemClock, err := clock.NewSystem(cfg.Skill.Timezone)
	if err != nil {
		return err
	}

	source := content.New(
		cfg.Content.APIURL,
		time.Duration(cfg.Content.TimeoutSeconds)*time.Second,
		log,
	)

	model := interaction.New(source, systemClock, log)

	errCh := make(chan error, 2)

	if cfg.NATS.URL != "" {
		natsConnection, connectErr := nats.Connect(cfg.NATS.URL)
		if connectErr != nil {
			return fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, connectErr)
		}

		defer natsConnection.Close()

		skillWorker := worker.New(
			natsConnection, cfg.NATS.SkillRequestSubject, model, cfg.Skill.ApplicationID, log,
		)

		go func() {
			errCh <- skillWorker.Run(ctx)
		}()

		log.System("Listening for skill turns on subject: %s", cfg.NATS.SkillRequestSubject)
	}

	webhook := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           server.New(model, cfg.Skill.ApplicationID, log),
		ReadHeaderTimeout: httpShutdownTimeout,
	}

	go func() {
		serveErr := webhook.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	log.System("Webhook listening on %s", cfg.HTTP.ListenAddress)

	select {
	case <-ctx.Done():
	case runErr := <-errCh:
		if runErr != nil {
			return fmt.Errorf("service failed: %w", runErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()

	shutdownErr := webhook.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		return fmt.Errorf("failed to shut down webhook: %w", shutdownErr)
	}

	return nil
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service exited with error: %v\n", err)
		os.Exit(1)
	}
}
