package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-market.com/task-market/internal/limiter"
)

// RateLimiter rejects clients that exceed the limiter's budget. Limiter
// backend failures let the request through.
func RateLimiter(l limiter.Limiter, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				logger.Warn("rate limiter unavailable", slog.Any("error", err))
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
