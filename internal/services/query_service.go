package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "task-market.com/task-market/internal/errors"
	model "task-market.com/task-market/internal/models"
	repository "task-market.com/task-market/internal/repositories"
)

// Dashboard is the per-user summary. Its parts are read independently.
type Dashboard struct {
	User                model.PublicUser
	CreatedTasks        []model.Task
	AvailableTasks      []model.TaskWithCreator
	CompletedTasksCount int64
}

type QueryService struct {
	store *repository.Store
}

func NewQueryService(store *repository.Store) *QueryService {
	return &QueryService{store: store}
}

// ListOpenTasks returns every open task, newest first.
func (s *QueryService) ListOpenTasks(ctx context.Context) ([]model.TaskWithCreator, error) {
	tasks, err := s.store.Tasks.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	return tasks, nil
}

func (s *QueryService) GetUserProfile(ctx context.Context, userID uint) (*model.PublicUser, error) {
	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	profile := user.Public()
	return &profile, nil
}

func (s *QueryService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	profile, err := s.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	created, err := s.store.Tasks.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks created by %d: %w", userID, err)
	}

	available, err := s.store.Tasks.ListOpenExcludingCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks available to %d: %w", userID, err)
	}

	completed, err := s.store.TaskLogs.CountByExecutor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count tasks executed by %d: %w", userID, err)
	}

	return &Dashboard{
		User:                *profile,
		CreatedTasks:        created,
		AvailableTasks:      available,
		CompletedTasksCount: completed,
	}, nil
}
