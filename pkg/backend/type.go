package backend

import (
	"arkive-client/internal/model"
	pkghttp "arkive-client/pkg/http"
)

// Config holds configuration for the backend client.
type Config struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// ChatRequest is one query sent to the chat endpoint. SessionID is empty for a new conversation.
type ChatRequest struct {
	Query     string
	UserID    string
	SessionID string
}

// ChatResponse is the backend answer to a ChatRequest.
type ChatResponse struct {
	Answer     string
	Sources    []model.Source
	Flagged    bool
	Confidence int
	// SessionID is only meaningful when the request carried none.
	SessionID string
}

// backendImpl implements IBackend.
type backendImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

type chatReqBody struct {
	Query     string `json:"query"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
}

type sourceBody struct {
	Source     string `json:"source"`
	Page       int    `json:"page"`
	ChunkIndex int    `json:"chunk_index"`
}

type chatRespBody struct {
	Answer     string       `json:"answer"`
	Sources    []sourceBody `json:"sources"`
	Flagged    bool         `json:"flagged"`
	Confidence float64      `json:"confidence"`
	SessionID  string       `json:"session_id"`
}

type sessionsRespBody struct {
	Sessions []sessionBody `json:"sessions"`
}

type sessionBody struct {
	SessionID  string          `json:"session_id"`
	LastActive model.Timestamp `json:"last_active"`
}

type historyRespBody struct {
	Messages []historyMessageBody `json:"messages"`
}

type historyMessageBody struct {
	Role       string       `json:"role"`
	Content    string       `json:"content"`
	Sources    []sourceBody `json:"sources"`
	Confidence float64      `json:"confidence"`
	Flagged    bool         `json:"flagged"`
}

type uploadRespBody struct {
	Message     string `json:"message"`
	DocID       string `json:"doc_id"`
	TotalChunks int    `json:"total_chunks"`
	IsPermanent bool   `json:"is_permanent"`
}

type documentsRespBody struct {
	Documents []documentBody `json:"documents"`
}

type documentBody struct {
	FileName    string          `json:"filename"`
	TotalPages  int             `json:"total_pages"`
	TotalChunks int             `json:"total_chunks"`
	UploadedBy  string          `json:"uploaded_by"`
	UploadedAt  model.Timestamp `json:"uploaded_at"`
	IsPermanent bool            `json:"is_permanent"`
}

type complianceRespBody struct {
	FileName string                      `json:"filename"`
	Score    string                      `json:"score"`
	Results  map[string]pillarResultBody `json:"results"`
	Gaps     []string                    `json:"gaps"`
}

type pillarResultBody struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type auditRespBody struct {
	Logs []auditLogBody `json:"logs"`
}

type auditLogBody struct {
	EventType string          `json:"event_type"`
	UserID    string          `json:"user_id"`
	Timestamp model.Timestamp `json:"timestamp"`
	Details   map[string]any  `json:"details"`
}
