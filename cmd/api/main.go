package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formintake/internal/config"
	"formintake/internal/database"
	"formintake/internal/httpapi"
	"formintake/internal/logging"
	"formintake/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}

	log, err := logging.New(cfg.App.Debug)
	if err != nil {
		stdlog.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("Starting "+cfg.App.Name, "version", cfg.App.Version, "debug", cfg.App.Debug, "addr", cfg.App.Addr())
	if cfg.Email.DisabledReason != "" {
		log.Warnw("Notification email disabled", "reason", cfg.Email.DisabledReason)
	}

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		log.Fatalw("Failed to initialize database", "error", err)
	}
	defer func() {
		log.Infow("Closing database connections")
		if err := database.Close(db); err != nil {
			log.Warnw("Error closing database", "error", err)
		}
	}()

	database.Migrate(db, log)

	emailSvc := services.NewEmailService(&cfg.Email, log)
	notifier := services.NewNotificationService(emailSvc, log)
	inquirySvc := services.NewInquiryService(db, notifier, log)
	healthSvc := services.NewHealthService(cfg.App.Name, db)

	handler := httpapi.NewHandler(cfg, log, inquirySvc, healthSvc)
	httpServer := httpapi.NewServer(&cfg.App, handler, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("Server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Errorw("Server failed", "error", err)
	case sig := <-shutdown:
		log.Infow("Starting graceful shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Warnw("Error during graceful shutdown", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			_ = httpServer.Close()
		}
	}

	// Let in-flight notification emails finish before the process exits.
	notifier.Wait()

	log.Infow("Server shutdown complete")
}
