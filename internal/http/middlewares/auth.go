package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-market.com/task-market/internal/constants"
	apperrors "task-market.com/task-market/internal/errors"
)

// Authenticator resolves a bearer token to a caller id.
type Authenticator interface {
	Authenticate(token string) (uint, error)
}

func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Message)
			}

			userID, err := a.Authenticate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Message)
			}

			c.Set(constants.ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// CallerID returns the id stored by RequireAuth.
func CallerID(c echo.Context) (uint, bool) {
	id, ok := c.Get(constants.ContextUserIDKey).(uint)
	return id, ok && id != 0
}
