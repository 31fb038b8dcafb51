// Package backendtest provides an in-process fake of the RAG backend for tests.
package backendtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Endpoint names one backend route.
type Endpoint string

const (
	Chat       Endpoint = "chat"
	Sessions   Endpoint = "sessions"
	History    Endpoint = "history"
	Upload     Endpoint = "upload"
	Documents  Endpoint = "documents"
	Compliance Endpoint = "compliance"
	Audit      Endpoint = "audit"
)

// Server is a scriptable fake backend. Endpoints without a handler answer 404.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	calls    []Call
	handlers map[Endpoint]http.HandlerFunc
}

// Call records one request received by the fake.
type Call struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// NewServer starts a fake backend closed automatically at test cleanup.
func NewServer(t testing.TB) *Server {
	s := &Server{handlers: make(map[Endpoint]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.route))
	t.Cleanup(s.Close)
	return s
}

// On installs h for endpoint e, replacing any previous handler.
func (s *Server) On(e Endpoint, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[e] = h
}

// Calls returns the requests received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CountPath returns how many requests hit a path with the given prefix.
func (s *Server) CountPath(prefix string) int {
	n := 0
	for _, c := range s.Calls() {
		if strings.HasPrefix(c.Path, prefix) {
			n++
		}
	}
	return n
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	body := ""
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		r.Body = io.NopCloser(strings.NewReader(body))
	}

	var e Endpoint
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/chat/":
		e = Chat
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/chat/sessions/"):
		e = Sessions
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/chat/history/"):
		e = History
	case r.Method == http.MethodPost && r.URL.Path == "/api/documents/upload":
		e = Upload
	case r.Method == http.MethodGet && r.URL.Path == "/api/documents/":
		e = Documents
	case r.Method == http.MethodPost && r.URL.Path == "/api/compliance/check":
		e = Compliance
	case r.Method == http.MethodGet && r.URL.Path == "/api/audit/":
		e = Audit
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
	h := s.handlers[e]
	s.mu.Unlock()

	if h == nil {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// JSON returns a handler that always answers status with v encoded as JSON.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Status returns a handler that answers status with an empty body.
func Status(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

// Block returns a handler that waits until release is closed before answering with next.
func Block(release <-chan struct{}, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
			return
		}
		next(w, r)
	}
}
