package validators

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	dto "task-market.com/task-market/internal/data_models"
	apperrors "task-market.com/task-market/internal/errors"
)

func TestFirst_ReportsFirstViolation(t *testing.T) {
	err := First(
		Required("username", ""),
		MinLength("password", "abc", 6),
	)
	if err == nil || err.Error() != "username is required" {
		t.Errorf("expected username violation first, got %v", err)
	}
	if !apperrors.IsKind(err, apperrors.KindInvalid) {
		t.Errorf("expected invalid kind")
	}

	if err := First(); err != nil {
		t.Errorf("empty chain should pass, got %v", err)
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	cases := []struct {
		name string
		req  dto.RegisterRequest
		ok   bool
	}{
		{"valid", dto.RegisterRequest{Username: "alice", Password: "secret1"}, true},
		{"short username", dto.RegisterRequest{Username: "al", Password: "secret1"}, false},
		{"long username", dto.RegisterRequest{Username: string(make([]byte, 51)), Password: "secret1"}, false},
		{"short password", dto.RegisterRequest{Username: "alice", Password: "12345"}, false},
		{"missing password", dto.RegisterRequest{Username: "alice"}, false},
		{"password at bcrypt limit", dto.RegisterRequest{Username: "alice", Password: strings.Repeat("a", 72)}, true},
		{"password over bcrypt limit", dto.RegisterRequest{Username: "alice", Password: strings.Repeat("a", 73)}, false},
		{"multibyte password over limit", dto.RegisterRequest{Username: "alice", Password: strings.Repeat("é", 37)}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateRegisterRequest(&c.req)
			if (err == nil) != c.ok {
				t.Errorf("expected ok=%v, got %v", c.ok, err)
			}
		})
	}
}

func TestValidateCreateTaskRequest(t *testing.T) {
	cases := []struct {
		name   string
		link   string
		reward string
		ok     bool
	}{
		{"valid", "https://x.test/page", "30.00", true},
		{"http", "http://example.com", "0.01", true},
		{"missing link", "", "1", false},
		{"relative link", "/tasks/1", "1", false},
		{"ftp link", "ftp://example.com/file", "1", false},
		{"not a url", "not a url", "1", false},
		{"zero reward", "https://x.test", "0", false},
		{"negative reward", "https://x.test", "-3", false},
		{"sub-cent reward", "https://x.test", "1.001", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := dto.CreateTaskRequest{Link: c.link, CoinReward: decimal.RequireFromString(c.reward)}
			err := ValidateCreateTaskRequest(&req)
			if (err == nil) != c.ok {
				t.Errorf("expected ok=%v, got %v", c.ok, err)
			}
		})
	}
}

func TestValidateCompleteTaskRequest(t *testing.T) {
	if err := ValidateCompleteTaskRequest(&dto.CompleteTaskRequest{TaskID: 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCompleteTaskRequest(&dto.CompleteTaskRequest{}); err == nil {
		t.Error("expected missing task id to fail")
	}
}
