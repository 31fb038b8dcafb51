package usecase

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"arkive-client/internal/model"
	"arkive-client/internal/session"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/backend/backendtest"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (session.UseCase, *backendtest.Server) {
	t.Helper()
	srv := backendtest.NewServer(t)
	be, err := backend.New(backend.Config{
		BaseURL:    srv.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: 5 * time.Second}),
	})
	require.NoError(t, err)
	uc := New(session.Config{Timeout: 2 * time.Second}, be, log.NewNopLogger())
	t.Cleanup(uc.Wait)
	return uc, srv
}

func TestBindTransitions(t *testing.T) {
	uc, _ := newTestUseCase(t)

	assert.Equal(t, model.SessionUnbound, uc.State())
	assert.Empty(t, uc.ID())

	assert.ErrorIs(t, uc.Bind("  "), session.ErrEmptySessionID)
	assert.Equal(t, model.SessionUnbound, uc.State())

	require.NoError(t, uc.Bind("s-1"))
	assert.Equal(t, model.SessionBound, uc.State())
	assert.Equal(t, "s-1", uc.ID())

	assert.ErrorIs(t, uc.Bind("s-2"), session.ErrAlreadyBound)
	assert.Equal(t, "s-1", uc.ID(), "a bound id never changes")

	uc.Unbind()
	assert.Equal(t, model.SessionUnbound, uc.State())
	assert.Empty(t, uc.ID())

	require.NoError(t, uc.Enter("s-9"))
	assert.Equal(t, model.SessionBound, uc.State())
	assert.Equal(t, "s-9", uc.ID())
	assert.ErrorIs(t, uc.Enter(""), session.ErrEmptySessionID)
}

func TestListSuccess(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Sessions, backendtest.JSON(http.StatusOK, map[string]any{
		"sessions": []map[string]any{
			{"session_id": "a", "last_active": "2026-10-01T09:00:00Z"},
			{"session_id": "b", "last_active": "2026-10-02 10:30:00.123456"},
		},
	}))

	got := uc.List(context.Background(), "alice")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, got, uc.Entries())

	calls := srv.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/chat/sessions/alice", calls[0].Path)
}

func TestListDegradesToEmpty(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.Sessions, backendtest.Status(http.StatusInternalServerError))

	got := uc.List(context.Background(), "alice")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, uc.Entries())
}

func TestRefreshRunsInBackground(t *testing.T) {
	uc, srv := newTestUseCase(t)
	var hits atomic.Int32
	srv.On(backendtest.Sessions, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		backendtest.JSON(http.StatusOK, map[string]any{
			"sessions": []map[string]any{{"session_id": "new-1", "last_active": "2026-10-01T09:00:00Z"}},
		})(w, r)
	})

	uc.Refresh(context.Background(), "alice")

	require.Eventually(t, func() bool {
		return len(uc.Entries()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "new-1", uc.Entries()[0].ID)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchRoundTrip(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.History, backendtest.JSON(http.StatusOK, map[string]any{
		"messages": []map[string]any{
			{"role": "user", "content": "What is PII?"},
			{"role": "assistant", "content": "Personal data.", "confidence": 87.6, "flagged": false,
				"sources": []map[string]any{{"source": "gdpr.pdf", "page": 4, "chunk_index": 2}}},
		},
	}))

	msgs, err := uc.Fetch(context.Background(), "s-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "What is PII?", msgs[0].Content)
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.Equal(t, 88, msgs[1].Confidence)
	assert.Equal(t, []model.Source{{Name: "gdpr.pdf", Page: 4, ChunkIndex: 2}}, msgs[1].Sources)
	assert.Equal(t, model.SessionUnbound, uc.State(), "fetch does not bind")
}

func TestFetchFailure(t *testing.T) {
	uc, srv := newTestUseCase(t)
	srv.On(backendtest.History, backendtest.Status(http.StatusNotFound))

	_, err := uc.Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, backend.ErrUnexpectedStatus)

	_, err = uc.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrEmptySessionID)
}

func TestListTimeout(t *testing.T) {
	srv := backendtest.NewServer(t)
	be, err := backend.New(backend.Config{
		BaseURL:    srv.URL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{Timeout: 5 * time.Second}),
	})
	require.NoError(t, err)
	uc := New(session.Config{Timeout: 50 * time.Millisecond}, be, log.NewNopLogger())

	release := make(chan struct{})
	defer close(release)
	srv.On(backendtest.Sessions, backendtest.Block(release, backendtest.Status(http.StatusOK)))

	start := time.Now()
	got := uc.List(context.Background(), "alice")
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}
