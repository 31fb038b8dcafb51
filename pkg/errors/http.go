package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and client-facing message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError creates an HTTPError. Codes that are valid HTTP statuses are used as the
// status; anything else is reported as 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

// NewHTTPErrorWithStatus creates an HTTPError with an application code distinct from the status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Code, e.Message)
}
