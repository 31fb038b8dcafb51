package model

import (
	"errors"
	"strings"
)

// MinUsernameLength is the only rule of the local username gate.
const MinUsernameLength = 3

var (
	ErrUsernameRequired = errors.New("model: username is required")
	ErrUsernameTooShort = errors.New("model: username must be at least 3 characters")
)

// NormalizeUsername applies the local username gate: trimmed, lower-cased, at least
// MinUsernameLength characters. There is no authentication behind it.
func NormalizeUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrUsernameRequired
	}
	if len([]rune(name)) < MinUsernameLength {
		return "", ErrUsernameTooShort
	}
	return strings.ToLower(name), nil
}
