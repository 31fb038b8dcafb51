package session

import "time"

const (
	// DefaultTimeout bounds session list and history calls.
	DefaultTimeout = 15 * time.Second
)

// Config configures the session manager.
type Config struct {
	Timeout time.Duration
}
