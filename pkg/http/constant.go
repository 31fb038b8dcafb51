package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default number of retries for idempotent requests.
	DefaultRetries = 0
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
