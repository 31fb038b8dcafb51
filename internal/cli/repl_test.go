package cli

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"arkive-client/config"
	"arkive-client/internal/app"
	"arkive-client/internal/compliance"
	"arkive-client/pkg/backend"
	"arkive-client/pkg/backend/backendtest"
	"arkive-client/pkg/log"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

func init() {
	color.NoColor = true
}

func newREPL(t *testing.T, input string) (*REPL, *bytes.Buffer, *backendtest.Server) {
	t.Helper()
	srv := backendtest.NewServer(t)
	be, err := backend.New(backend.Config{BaseURL: srv.URL})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.User.Name = "alice"
	cfg.Timeouts = config.TimeoutsConfig{Chat: 5 * time.Second, Upload: 5 * time.Second, Sessions: 5 * time.Second, Compliance: 5 * time.Second}
	cfg.Cache.TTL = time.Minute

	a, err := app.New(app.Config{Logger: log.NewNopLogger(), Config: cfg, Backend: be})
	require.NoError(t, err)
	t.Cleanup(a.Wait)

	out := &bytes.Buffer{}
	return New(log.NewNopLogger(), a, bufio.NewScanner(strings.NewReader(input)), out), out, srv
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPromptUsername(t *testing.T) {
	out := &bytes.Buffer{}
	name, err := PromptUsername(bufio.NewScanner(strings.NewReader("\nab\n  Alice \n")), out)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	assert.Contains(t, out.String(), "Please enter a username.")
	assert.Contains(t, out.String(), "at least 3 characters")
}

func TestPromptUsernameInputClosed(t *testing.T) {
	_, err := PromptUsername(bufio.NewScanner(strings.NewReader("ab\n")), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRunAskAndQuit(t *testing.T) {
	r, out, srv := newREPL(t, "What is Article 13?\n/quit\nnever read\n")
	srv.On(backendtest.Chat, backendtest.JSON(http.StatusOK, map[string]any{
		"answer":     "Transparency obligations.",
		"sources":    []map[string]any{{"source": "ai-act.pdf", "page": 12, "chunk_index": 3}},
		"flagged":    true,
		"confidence": 72,
		"session_id": "s-1",
	}))
	srv.On(backendtest.Sessions, backendtest.JSON(http.StatusOK, map[string]any{"sessions": []any{}}))

	require.NoError(t, r.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Signed in as alice.")
	assert.Contains(t, s, "arkive> Transparency obligations.")
	assert.Contains(t, s, "flagged for review")
	assert.Contains(t, s, "confidence 72%")
	assert.Contains(t, s, "[ai-act.pdf p.12 #3]")

	chatCalls := 0
	for _, c := range srv.Calls() {
		if c.Path == "/api/chat/" {
			chatCalls++
		}
	}
	assert.Equal(t, 1, chatCalls)
}

func TestRunBackendDownShowsFallback(t *testing.T) {
	r, out, _ := newREPL(t, "hello\n")

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Error connecting to backend.")
}

func TestRunUnknownCommandAndHelp(t *testing.T) {
	r, out, _ := newREPL(t, "/nope\n/help\n")

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Unknown command /nope.")
	assert.Contains(t, out.String(), "/upload <path>")
}

func TestRunLoadSession(t *testing.T) {
	r, out, srv := newREPL(t, "/load\n/load s-7\n")
	srv.On(backendtest.History, backendtest.JSON(http.StatusOK, map[string]any{
		"messages": []map[string]any{
			{"role": "user", "content": "old question"},
			{"role": "assistant", "content": "old answer", "confidence": 50},
		},
	}))
	srv.On(backendtest.Sessions, backendtest.JSON(http.StatusOK, map[string]any{"sessions": []any{}}))

	require.NoError(t, r.Run(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Usage: /load <session id>")
	assert.Contains(t, s, "Session s-7 (BOUND) for alice")
	assert.Contains(t, s, "you> old question")
	assert.Contains(t, s, "arkive> old answer")
}

func TestRunUpload(t *testing.T) {
	path := writeFile(t, "policy.pdf", minimalPDF)
	r, out, srv := newREPL(t, "/upload "+path+"\n")
	srv.On(backendtest.Upload, backendtest.JSON(http.StatusOK, map[string]any{"total_chunks": 4, "is_permanent": true}))

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "**policy.pdf** uploaded successfully! 4 chunks indexed.")
	assert.Contains(t, out.String(), "permanent knowledge base")
}

func TestRunCheckRejectsNonPDF(t *testing.T) {
	path := writeFile(t, "notes.pdf", "just text")
	r, out, srv := newREPL(t, "/check "+path+"\n/report\n")

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), compliance.MsgNotPDF)
	assert.Contains(t, out.String(), "No report yet.")
	assert.Zero(t, srv.CountPath("/api/compliance/"))
}

func TestRunCheckScoresReport(t *testing.T) {
	path := writeFile(t, "policy.pdf", minimalPDF)
	r, out, srv := newREPL(t, "/check "+path+"\n/reset\n/report\n")
	results := map[string]any{}
	for _, k := range []string{"transparency", "human_oversight", "privacy", "fairness", "accountability", "safety"} {
		results[k] = map[string]any{"status": "pass"}
	}
	srv.On(backendtest.Compliance, backendtest.JSON(http.StatusOK, map[string]any{
		"filename": "policy.pdf",
		"results":  results,
		"gaps":     []string{"Publish an energy report."},
	}))

	require.NoError(t, r.Run(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Compliant (6/8)")
	assert.Contains(t, s, "1. Publish an energy report.")
	assert.Contains(t, s, "Compliance report cleared.")
	assert.Contains(t, s, "No report yet.")
}

func TestRunAudit(t *testing.T) {
	r, out, srv := newREPL(t, "/audit x\n/audit 3\n")
	srv.On(backendtest.Audit, backendtest.JSON(http.StatusOK, map[string]any{
		"logs": []map[string]any{
			{"event_type": "document_upload", "user_id": "alice", "timestamp": "2026-10-16T10:00:00Z"},
			{"event_type": "chat_query", "user_id": "alice", "timestamp": "2026-10-16T10:01:00Z"},
		},
	}))

	require.NoError(t, r.Run(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Usage: /audit [limit]")
	assert.Contains(t, s, "2 records:")
	assert.Equal(t, "limit=3", srv.Calls()[0].Query)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	r, out, srv := newREPL(t, "hello\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.Run(ctx))
	assert.NotContains(t, out.String(), "you>")
	assert.Empty(t, srv.Calls())
}
