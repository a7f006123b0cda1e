package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"task-market.com/task-market/internal/logging"
)

type fixedLimiter struct {
	allowed bool
	err     error
}

func (f fixedLimiter) Allow(context.Context, string) (bool, error) {
	return f.allowed, f.err
}

type stubAuthenticator map[string]uint

func (s stubAuthenticator) Authenticate(token string) (uint, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, errors.New("unknown token")
}

func serve(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, uint) {
	e := echo.New()
	var caller uint
	e.GET("/", func(c echo.Context) error {
		caller, _ = CallerID(c)
		return c.NoContent(http.StatusOK)
	}, mw)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, caller
}

func TestRateLimiter(t *testing.T) {
	logger := logging.Discard()
	cases := []struct {
		name    string
		limiter fixedLimiter
		want    int
	}{
		{"allowed", fixedLimiter{allowed: true}, http.StatusOK},
		{"exceeded", fixedLimiter{allowed: false}, http.StatusTooManyRequests},
		{"backend down", fixedLimiter{err: errors.New("redis down")}, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, _ := serve(RateLimiter(c.limiter, logger), httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != c.want {
				t.Errorf("expected %d, got %d", c.want, rec.Code)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	mw := RequireAuth(stubAuthenticator{"good": 7})

	cases := []struct {
		name   string
		header string
		status int
		caller uint
	}{
		{"valid", "Bearer good", http.StatusOK, 7},
		{"missing", "", http.StatusUnauthorized, 0},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, 0},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if c.header != "" {
				req.Header.Set(echo.HeaderAuthorization, c.header)
			}
			rec, caller := serve(mw, req)
			if rec.Code != c.status {
				t.Errorf("expected %d, got %d", c.status, rec.Code)
			}
			if caller != c.caller {
				t.Errorf("expected caller %d, got %d", c.caller, caller)
			}
		})
	}
}
