package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"arkive-client/internal/audit"
	"arkive-client/internal/model"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/backend/backendtest"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (audit.UseCase, *backendtest.Server) {
	t.Helper()
	srv := backendtest.NewServer(t)
	be, err := backend.New(backend.Config{
		BaseURL:    srv.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: 5 * time.Second}),
	})
	require.NoError(t, err)
	return New(audit.Config{CacheTTL: time.Minute}, be, log.NewNopLogger()), srv
}

func auditHandler() http.HandlerFunc {
	return backendtest.JSON(http.StatusOK, map[string]any{
		"logs": []map[string]any{
			{"event_type": "flagged_query", "user_id": "bob", "timestamp": "2026-10-16T10:00:00Z", "details": map[string]any{"query": "x"}},
			{"event_type": "query", "user_id": "alice", "timestamp": "2026-10-16T09:00:00Z", "details": map[string]any{}},
			{"event_type": "query", "user_id": "alice", "timestamp": "2026-10-16T08:00:00Z"},
			{"event_type": "login", "user_id": "alice", "timestamp": "2026-10-16T07:00:00Z"},
		},
	})
}

func TestListUsesLimitAndCache(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Audit, auditHandler())

	logs := uc.List(context.Background(), 0)
	require.Len(t, logs, 4)
	assert.Equal(t, "flagged_query", logs[0].EventType)

	_ = uc.List(context.Background(), 0)
	_ = uc.List(context.Background(), 500)

	calls := srv.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "limit=20", calls[0].Query)
	assert.Equal(t, "limit=200", calls[1].Query)
}

func TestListDegradesToEmpty(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Audit, backendtest.Status(http.StatusInternalServerError))

	assert.Empty(t, uc.List(context.Background(), 10))
}

func TestSummarize(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Audit, auditHandler())

	s := uc.Summarize(uc.List(context.Background(), 20))
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Counts[model.AuditCategoryAlert])
	assert.Equal(t, 2, s.Counts[model.AuditCategoryQuery])
	assert.Equal(t, 1, s.Counts[model.AuditCategoryOther])
	assert.Zero(t, s.Counts[model.AuditCategoryUpload])
}
