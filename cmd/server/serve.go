package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/worklog-api/internal/config"
	"github.com/yukikurage/worklog-api/internal/database"
	"github.com/yukikurage/worklog-api/internal/handlers"
	"github.com/yukikurage/worklog-api/internal/logging"
	"github.com/yukikurage/worklog-api/internal/middleware"
	"github.com/yukikurage/worklog-api/internal/repository"
	"github.com/yukikurage/worklog-api/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	// Load configuration
	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
		go limiter.RunJanitor(ctx, time.Minute)
	}

	// Initialize digest service
	var digestService *services.DigestService
	if cfg.OpenAIAPIKey != "" {
		digestService = services.NewDigestService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		slog.Info("OPENAI_API_KEY not set, digest endpoint disabled")
	}

	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	router := handlers.NewRouter(handlers.Services{
		Auth:       services.NewAuthService(userRepo),
		Activity:   services.NewActivityService(activityRepo),
		Feedback:   services.NewFeedbackService(feedbackRepo),
		Statistics: services.NewStatisticsService(activityRepo),
		Digest:     digestService,
	}, handlers.RouterOptions{
		SessionStore: store,
		RateLimiter:  limiter,
		AccessLog:    os.Stdout,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "driver", cfg.DBDriver, "session_store", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}
