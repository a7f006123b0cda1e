package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	model "task-market.com/task-market/internal/models"
)

type TaskLogRepository struct {
	db *gorm.DB
}

func NewTaskLogRepository(db *gorm.DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

func (r *TaskLogRepository) Create(ctx context.Context, taskID, executorID uint) (*model.TaskLog, error) {
	entry := &model.TaskLog{
		TaskID:         taskID,
		ExecutorUserID: executorID,
		CompletedAt:    time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, translate(err)
	}

	return entry, nil
}

func (r *TaskLogRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskLog, error) {
	entries := []model.TaskLog{}
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&entries).Error
	return entries, err
}

func (r *TaskLogRepository) CountByExecutor(ctx context.Context, executorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskLog{}).
		Where("executor_user_id = ?", executorID).
		Count(&count).Error
	return count, err
}
