package chat

import "errors"

// Domain errors
var (
	ErrOwnerRequired = errors.New("chat: owner id is required")
	ErrEmptyQuery    = errors.New("chat: query is empty")
	ErrChatInFlight  = errors.New("chat: a query is already in flight")
	ErrFileRequired  = errors.New("chat: file is required")
	ErrLoadSession   = errors.New("chat: failed to load session")
)
