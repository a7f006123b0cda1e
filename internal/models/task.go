package model

import (
	"time"

	"github.com/shopspring/decimal"

	"task-market.com/task-market/internal/constants"
)

type Task struct {
	ID            uint                 `gorm:"primaryKey;autoIncrement" json:"task_id"`
	CreatorUserID uint                 `gorm:"not null;index" json:"creator_user_id"`
	Link          string               `gorm:"not null" json:"link"`
	CoinReward    decimal.Decimal      `gorm:"type:decimal(10,2);not null" json:"coin_reward"`
	Status        constants.TaskStatus `gorm:"type:varchar(20);not null;default:open;index" json:"status"`
	CreatedAt     time.Time            `gorm:"index" json:"created_at"`
}

// TaskWithCreator is a task joined with its creator's username.
type TaskWithCreator struct {
	ID              uint                 `json:"task_id"`
	CreatorUserID   uint                 `json:"creator_user_id"`
	CreatorUsername string               `json:"creator_username"`
	Link            string               `json:"link"`
	CoinReward      decimal.Decimal      `json:"coin_reward"`
	Status          constants.TaskStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ValidReward reports whether reward is positive and fits the cent scale.
func ValidReward(reward decimal.Decimal) bool {
	return reward.IsPositive() && reward.Equal(reward.Truncate(constants.MoneyScale))
}
