package audit

import (
	"time"

	"arkive-client/internal/model"
)

const (
	DefaultLimit    = 20
	MaxLimit        = 200
	DefaultCacheTTL = 30 * time.Second
	DefaultTimeout  = 15 * time.Second
)

// Config configures the audit view.
type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

// Summary counts audit records per category.
type Summary struct {
	Total  int
	Counts map[model.AuditCategory]int
}
