package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-market.com/task-market/internal/http/middlewares"
	"task-market.com/task-market/internal/limiter"
)

type RouteOptions struct {
	Limiter   limiter.Limiter
	ClientURL string
	Logger    *slog.Logger
}

func Register(e *echo.Echo, h *Handler, authenticator middleware.Authenticator, opts RouteOptions) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(opts.Logger))
	if opts.ClientURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{opts.ClientURL},
			AllowCredentials: true,
		}))
	}
	if opts.Limiter != nil {
		e.Use(middleware.RateLimiter(opts.Limiter, opts.Logger))
	}

	requireAuth := middleware.RequireAuth(authenticator)

	e.GET("/healthcheck", h.Healthcheck)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)

	e.GET("/profile", h.GetUserProfile, requireAuth)
	e.GET("/dashboard", h.GetDashboard, requireAuth)

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask, requireAuth)
	e.POST("/tasks/complete", h.CompleteTask, requireAuth)
	e.GET("/tasks/:id", h.GetTask)
}
