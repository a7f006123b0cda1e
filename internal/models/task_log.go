package model

import "time"

// TaskLog is the immutable completion record of a task. A task has at most one.
type TaskLog struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"log_id"`
	TaskID         uint      `gorm:"not null;uniqueIndex" json:"task_id"`
	ExecutorUserID uint      `gorm:"not null;index" json:"executor_user_id"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`
}
