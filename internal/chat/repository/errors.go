package repository

import "errors"

var (
	ErrInvalidRole = errors.New("repository: invalid message role")
)
