package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-market.com/task-market/internal/auth"
	config "task-market.com/task-market/internal/configs"
	httpapi "task-market.com/task-market/internal/http"
	"task-market.com/task-market/internal/limiter"
	"task-market.com/task-market/internal/logging"
	repository "task-market.com/task-market/internal/repositories"
	"task-market.com/task-market/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, envLoaded, err := loadConfig()
		if err != nil {
			return err
		}

		logger := logging.New(cfg.LogLevel, os.Stdout)
		if !envLoaded {
			logger.Info(".env file not found, using environment variables")
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		rateLimiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		store := repository.NewStore(database)
		authService := services.NewAuthService(
			store,
			auth.NewBcryptHasher(cfg.BcryptCost),
			auth.NewJWTTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour),
			logger,
		)
		taskService := services.NewTaskService(store, logger)
		queryService := services.NewQueryService(store)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		handler := httpapi.NewHandler(authService, taskService, queryService, logger)
		httpapi.Register(e, handler, authService, httpapi.RouteOptions{
			Limiter:   rateLimiter,
			ClientURL: cfg.ClientURL,
			Logger:    logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Info("HTTP server listening", slog.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown incomplete", slog.Any("error", err))
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newLimiter shares counters through Redis when configured and falls back to
// per-process counters otherwise.
func newLimiter(cfg config.Config) (limiter.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		return limiter.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	return limiter.NewRedisLimiter(redisClient, cfg.RedisRateLimitPrefix, cfg.RateLimit, time.Minute), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
