package document

import "time"

const (
	DefaultCacheTTL = 30 * time.Second
	DefaultTimeout  = 15 * time.Second
)

// Config configures the document listing.
type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}
