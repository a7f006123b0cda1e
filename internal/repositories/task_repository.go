package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"task-market.com/task-market/internal/constants"
	model "task-market.com/task-market/internal/models"
)

const taskWithCreatorColumns = "tasks.id, tasks.creator_user_id, users.username AS creator_username, " +
	"tasks.link, tasks.coin_reward, tasks.status, tasks.created_at"

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, creatorID uint, link string, reward decimal.Decimal) (*model.Task, error) {
	task := &model.Task{
		CreatorUserID: creatorID,
		Link:          link,
		CoinReward:    reward,
		Status:        constants.StatusOpen,
		CreatedAt:     time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, translate(err)
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

// MarkCompleted moves an open task to completed. It returns ErrOptimisticLock
// when the row is no longer open, i.e. another completion committed first.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", id, constants.StatusOpen).
		Update("status", constants.StatusCompleted)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	return nil
}

func (r *TaskRepository) ListByCreator(ctx context.Context, creatorID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).
		Where("creator_user_id = ?", creatorID).
		Order("created_at desc, id desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListOpen(ctx context.Context) ([]model.TaskWithCreator, error) {
	tasks := []model.TaskWithCreator{}
	err := r.openWithCreator(ctx).Scan(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListOpenExcludingCreator(ctx context.Context, userID uint) ([]model.TaskWithCreator, error) {
	tasks := []model.TaskWithCreator{}
	err := r.openWithCreator(ctx).
		Where("tasks.creator_user_id <> ?", userID).
		Scan(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) openWithCreator(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tasks").
		Select(taskWithCreatorColumns).
		Joins("JOIN users ON users.id = tasks.creator_user_id").
		Where("tasks.status = ?", constants.StatusOpen).
		Order("tasks.created_at desc, tasks.id desc")
}
