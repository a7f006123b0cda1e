package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrExecutorNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "executor not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskAlreadyCompleted = &Exception{
	Kind:       KindInvalidState,
	Message:    "task already completed",
	StatusCode: http.StatusConflict,
}

var ErrCannotCompleteOwnTask = &Exception{
	Kind:       KindForbidden,
	Message:    "cannot complete own task",
	StatusCode: http.StatusForbidden,
}

var ErrInvalidReward = &Exception{
	Kind:       KindInvalid,
	Message:    "coin reward must be positive with at most two decimal places",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskID = &Exception{
	Kind:       KindInvalid,
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
