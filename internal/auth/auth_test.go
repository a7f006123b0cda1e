package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("expected hash to differ from the password")
	}

	if err := h.Compare(hash, "secret123"); err != nil {
		t.Errorf("expected password to match: %v", err)
	}
	if err := h.Compare(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}
	if err := h.Compare("not-a-hash", "secret123"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected mismatch for malformed hash, got %v", err)
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	if _, err := h.Hash(strings.Repeat("a", MaxPasswordBytes)); err != nil {
		t.Fatalf("password at the limit should hash: %v", err)
	}
	if _, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestJWTTokenManager_RoundTrip(t *testing.T) {
	m := NewJWTTokenManager("secret", time.Hour)

	token, expiresAt, err := m.Issue(42, "alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expected expiry in the future, got %v", expiresAt)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected token id to be set")
	}
}

func TestJWTTokenManager_Rejects(t *testing.T) {
	m := NewJWTTokenManager("secret", time.Hour)
	token, _, _ := m.Issue(1, "bob")

	other := NewJWTTokenManager("other-secret", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected invalid token for wrong secret, got %v", err)
	}

	if _, err := m.Parse("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected invalid token for garbage, got %v", err)
	}

	expired := NewJWTTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.Issue(1, "bob")
	if _, err := m.Parse(old); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected expired token to be rejected, got %v", err)
	}
}
