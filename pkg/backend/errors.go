package backend

import "errors"

var (
	ErrBaseURLRequired   = errors.New("backend: base url is required")
	ErrUnexpectedStatus  = errors.New("backend: unexpected status code")
	ErrInvalidResponse   = errors.New("backend: invalid response body")
	ErrSessionIDRequired = errors.New("backend: session id is required")
	ErrUserIDRequired    = errors.New("backend: user id is required")
)
