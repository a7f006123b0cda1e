package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"task-market.com/task-market/internal/constants"
	apperrors "task-market.com/task-market/internal/errors"
	model "task-market.com/task-market/internal/models"
	repository "task-market.com/task-market/internal/repositories"
)

// TaskService owns the task lifecycle: creation debits the creator, completion
// credits the executor. Each operation is a single store transaction.
type TaskService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewTaskService(store *repository.Store, logger *slog.Logger) *TaskService {
	return &TaskService{
		store:  store,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, creatorID uint, link string, reward decimal.Decimal) (*model.Task, error) {
	if !model.ValidReward(reward) {
		return nil, apperrors.ErrInvalidReward
	}

	var task *model.Task
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		creator, err := tx.Users.FindByIDForUpdate(ctx, creatorID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("load creator %d: %w", creatorID, err)
		}

		if creator.Coin.LessThan(reward) {
			return apperrors.ErrInsufficientBalance
		}

		if err := tx.Users.UpdateBalance(ctx, creator.ID, creator.Coin.Sub(reward)); err != nil {
			return fmt.Errorf("debit creator %d: %w", creator.ID, err)
		}

		task, err = tx.Tasks.CreateTask(ctx, creator.ID, link, reward)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		return nil
	})
	if err != nil {
		logFailure(s.logger, "create task", err, slog.Uint64("creator_id", uint64(creatorID)))
		return nil, err
	}

	s.logger.Info("task created",
		slog.Uint64("task_id", uint64(task.ID)),
		slog.Uint64("creator_id", uint64(creatorID)),
		slog.String("coin_reward", task.CoinReward.StringFixed(constants.MoneyScale)),
	)
	return task, nil
}

// CompleteTask transfers the reward of an open task to the executor and
// records the completion. The self-completion check runs before the status
// check, so a creator always gets ErrCannotCompleteOwnTask.
func (s *TaskService) CompleteTask(ctx context.Context, taskID, executorID uint) (*model.Task, error) {
	var task *model.Task
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		task, err = tx.Tasks.FindByIDForUpdate(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return fmt.Errorf("load task %d: %w", taskID, err)
		}

		if task.CreatorUserID == executorID {
			return apperrors.ErrCannotCompleteOwnTask
		}

		if task.Status != constants.StatusOpen {
			return apperrors.ErrTaskAlreadyCompleted
		}

		executor, err := tx.Users.FindByIDForUpdate(ctx, executorID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.ErrExecutorNotFound
			}
			return fmt.Errorf("load executor %d: %w", executorID, err)
		}

		if err := tx.Tasks.MarkCompleted(ctx, task.ID); err != nil {
			if errors.Is(err, repository.ErrOptimisticLock) {
				return apperrors.ErrTaskAlreadyCompleted
			}
			return fmt.Errorf("complete task %d: %w", task.ID, err)
		}

		if err := tx.Users.UpdateBalance(ctx, executor.ID, executor.Coin.Add(task.CoinReward)); err != nil {
			return fmt.Errorf("credit executor %d: %w", executor.ID, err)
		}

		if _, err := tx.TaskLogs.Create(ctx, task.ID, executor.ID); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperrors.ErrTaskAlreadyCompleted
			}
			return fmt.Errorf("log completion of task %d: %w", task.ID, err)
		}

		task.Status = constants.StatusCompleted
		return nil
	})
	if err != nil {
		logFailure(s.logger, "complete task", err,
			slog.Uint64("task_id", uint64(taskID)),
			slog.Uint64("executor_id", uint64(executorID)),
		)
		return nil, err
	}

	s.logger.Info("task completed",
		slog.Uint64("task_id", uint64(task.ID)),
		slog.Uint64("executor_id", uint64(executorID)),
		slog.String("coin_reward", task.CoinReward.StringFixed(constants.MoneyScale)),
	)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.store.Tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// logFailure keeps expected domain failures at debug level and reports
// everything else as an error.
func logFailure(logger *slog.Logger, op string, err error, attrs ...any) {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		logger.Debug(op+" rejected", append(attrs, slog.String("reason", apperrors.MessageOf(err)))...)
		return
	}
	logger.Error(op+" failed", append(attrs, slog.Any("error", err))...)
}
