package dto

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskRequest accepts coin_reward as a JSON number or string.
type CreateTaskRequest struct {
	Link       string          `json:"link"`
	CoinReward decimal.Decimal `json:"coin_reward"`
}

type CompleteTaskRequest struct {
	TaskID int64 `json:"task_id"`
}
