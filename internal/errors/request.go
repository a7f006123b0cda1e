package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Kind:       KindInvalid,
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

// Invalid builds a validation failure carrying the violated constraint.
func Invalid(message string) *Exception {
	return &Exception{
		Kind:       KindInvalid,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
