package validators

import (
	"task-market.com/task-market/internal/auth"
	dto "task-market.com/task-market/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	return First(
		Required("username", r.Username),
		LengthBetween("username", r.Username, 3, 50),
		Required("password", r.Password),
		MinLength("password", r.Password, 6),
		MaxBytes("password", r.Password, auth.MaxPasswordBytes),
	)
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	return First(
		Required("username", r.Username),
		Required("password", r.Password),
	)
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	return First(
		Required("link", r.Link),
		HTTPURL("link", r.Link),
		PositiveMoney("coin_reward", r.CoinReward),
	)
}

func ValidateCompleteTaskRequest(r *dto.CompleteTaskRequest) error {
	return First(
		PositiveID("task_id", r.TaskID),
	)
}
