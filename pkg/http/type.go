package http

import (
	"io"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
// Retries apply to GET only; POSTs are sent exactly once.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	// Transport overrides the underlying http.Client, mainly for tests.
	Transport *http.Client
}

// FilePart is one file field of a multipart body.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

// MultipartBody is a multipart/form-data request body.
type MultipartBody struct {
	Fields map[string]string
	Files  []FilePart
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}
