package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"task-market.com/task-market/internal/auth"
	"task-market.com/task-market/internal/constants"
	apperrors "task-market.com/task-market/internal/errors"
	model "task-market.com/task-market/internal/models"
	repository "task-market.com/task-market/internal/repositories"
)

type LoginResult struct {
	User      model.PublicUser
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	store  *repository.Store
	hasher auth.PasswordHasher
	tokens auth.TokenManager
	logger *slog.Logger
}

func NewAuthService(
	store *repository.Store,
	hasher auth.PasswordHasher,
	tokens auth.TokenManager,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account holding the starting balance.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.PublicUser, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperrors.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user *model.User
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		_, err := tx.Users.FindByUsername(ctx, username)
		if err == nil {
			return apperrors.ErrUsernameExists
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("lookup username: %w", err)
		}

		user, err = tx.Users.Create(ctx, username, hash, constants.StartingBalance)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperrors.ErrUsernameExists
			}
			return fmt.Errorf("insert user: %w", err)
		}
		return nil
	})
	if err != nil {
		logFailure(s.logger, "register", err, slog.String("username", username))
		return nil, err
	}

	s.logger.Info("user registered", slog.Uint64("user_id", uint64(user.ID)))

	profile := user.Public()
	return &profile, nil
}

// Login never reveals which of username or password was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user.Public(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate resolves a bearer token to the caller's user id.
func (s *AuthService) Authenticate(token string) (uint, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return 0, apperrors.ErrUnauthorized
	}
	return claims.UserID, nil
}
