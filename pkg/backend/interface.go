package backend

import (
	"context"
	"strings"

	"arkive-client/internal/model"
	pkghttp "arkive-client/pkg/http"
)

// IBackend is the typed client for the RAG backend's HTTP API.
// Implementations are safe for concurrent use.
type IBackend interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ListSessions(ctx context.Context, userID string) ([]model.SessionEntry, error)
	GetHistory(ctx context.Context, sessionID string) ([]model.Message, error)
	UploadDocument(ctx context.Context, userID string, file model.File) (model.UploadResult, error)
	ListDocuments(ctx context.Context) ([]model.Document, error)
	CheckCompliance(ctx context.Context, userID string, file model.File) (model.ComplianceReport, error)
	ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error)
}

// New creates a backend client bound to cfg.BaseURL. Returns the interface.
func New(cfg Config) (IBackend, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &backendImpl{
		baseURL:    baseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}
