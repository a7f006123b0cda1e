package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Kind:       KindNotFound,
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}

var ErrUsernameExists = &Exception{
	Kind:       KindConflict,
	Message:    "username already exists",
	StatusCode: http.StatusConflict,
}

var ErrInvalidCredentials = &Exception{
	Kind:       KindUnauthorized,
	Message:    "invalid username or password",
	StatusCode: http.StatusUnauthorized,
}

var ErrUnauthorized = &Exception{
	Kind:       KindUnauthorized,
	Message:    "authentication required",
	StatusCode: http.StatusUnauthorized,
}

var ErrInsufficientBalance = &Exception{
	Kind:       KindInsufficientFunds,
	Message:    "insufficient coin balance",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrPasswordTooLong = &Exception{
	Kind:       KindInvalid,
	Message:    "password must be at most 72 bytes",
	StatusCode: http.StatusBadRequest,
}
