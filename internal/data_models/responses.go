package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"task-market.com/task-market/internal/constants"
	model "task-market.com/task-market/internal/models"
)

type UserResponse struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Coin      string    `json:"coin"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskResponse struct {
	TaskID          uint      `json:"task_id"`
	CreatorUserID   uint      `json:"creator_user_id"`
	CreatorUsername string    `json:"creator_username,omitempty"`
	Link            string    `json:"link"`
	CoinReward      string    `json:"coin_reward"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type TaskListResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}

type DashboardResponse struct {
	User                UserResponse   `json:"user"`
	CreatedTasks        []TaskResponse `json:"created_tasks"`
	AvailableTasks      []TaskResponse `json:"available_tasks"`
	CompletedTasksCount int64          `json:"completed_tasks_count"`
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(constants.MoneyScale)
}

func NewUserResponse(u model.PublicUser) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Coin:      formatMoney(u.Coin),
		CreatedAt: u.CreatedAt,
	}
}

func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.ID,
		CreatorUserID: t.CreatorUserID,
		Link:          t.Link,
		CoinReward:    formatMoney(t.CoinReward),
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
	}
}

func NewTaskWithCreatorResponse(t model.TaskWithCreator) TaskResponse {
	return TaskResponse{
		TaskID:          t.ID,
		CreatorUserID:   t.CreatorUserID,
		CreatorUsername: t.CreatorUsername,
		Link:            t.Link,
		CoinReward:      formatMoney(t.CoinReward),
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
	}
}

func NewTaskListResponse(tasks []model.TaskWithCreator) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskWithCreatorResponse(t))
	}
	return TaskListResponse{Count: len(out), Tasks: out}
}

func NewLoginResponse(user model.PublicUser, token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		User:      NewUserResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}
}

func NewDashboardResponse(
	user model.PublicUser,
	createdTasks []model.Task,
	availableTasks []model.TaskWithCreator,
	completedTasksCount int64,
) DashboardResponse {
	created := make([]TaskResponse, 0, len(createdTasks))
	for _, t := range createdTasks {
		created = append(created, NewTaskResponse(t))
	}

	available := make([]TaskResponse, 0, len(availableTasks))
	for _, t := range availableTasks {
		available = append(available, NewTaskWithCreatorResponse(t))
	}

	return DashboardResponse{
		User:                NewUserResponse(user),
		CreatedTasks:        created,
		AvailableTasks:      available,
		CompletedTasksCount: completedTasksCount,
	}
}
