package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrTaskNotFound, http.StatusNotFound},
		{fmt.Errorf("complete task: %w", ErrTaskAlreadyCompleted), http.StatusConflict},
		{ErrCannotCompleteOwnTask, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := StatusCode(c.err); got != c.want {
			t.Errorf("StatusCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(ErrInsufficientBalance) != KindInsufficientFunds {
		t.Errorf("expected insufficient funds kind")
	}
	if !IsKind(fmt.Errorf("wrapped: %w", ErrUsernameExists), KindConflict) {
		t.Errorf("expected wrapped conflict to keep its kind")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Errorf("expected plain errors to be internal")
	}
	if Invalid("link is required").StatusCode != http.StatusBadRequest {
		t.Errorf("expected validation failures to be bad requests")
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(fmt.Errorf("wrapped: %w", ErrTaskNotFound)); got != "task not found" {
		t.Errorf("expected wrapped exception message, got %q", got)
	}
	if got := MessageOf(errors.New("boom")); got != "" {
		t.Errorf("expected empty message for plain error, got %q", got)
	}
}
