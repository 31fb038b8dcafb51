package session

import "errors"

var (
	ErrAlreadyBound   = errors.New("session: already bound")
	ErrEmptySessionID = errors.New("session: session id is empty")
)
