package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"arkive-client/internal/model"
	pkghttp "arkive-client/pkg/http"
	"arkive-client/pkg/log"
)

// Chat sends one query to the RAG pipeline.
func (c *backendImpl) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	body := chatReqBody{
		Query:     req.Query,
		UserID:    req.UserID,
		SessionID: req.SessionID,
	}

	raw, statusCode, err := c.httpClient.Post(ctx, c.baseURL+PathChat, body, requestHeaders(ctx))
	if err != nil {
		return ChatResponse{}, fmt.Errorf("failed to send chat query: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return ChatResponse{}, err
	}

	var resp chatRespBody
	if err := decode(raw, &resp); err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{
		Answer:     resp.Answer,
		Sources:    toSources(resp.Sources),
		Flagged:    resp.Flagged,
		Confidence: model.ClampConfidence(resp.Confidence),
		SessionID:  resp.SessionID,
	}, nil
}

// ListSessions returns the owner's conversation summaries.
func (c *backendImpl) ListSessions(ctx context.Context, userID string) ([]model.SessionEntry, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathChatSessions, url.PathEscape(userID))

	raw, statusCode, err := c.httpClient.Get(ctx, u, requestHeaders(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return nil, err
	}

	var resp sessionsRespBody
	if err := decode(raw, &resp); err != nil {
		return nil, err
	}

	entries := make([]model.SessionEntry, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		entries = append(entries, model.SessionEntry{
			ID:         s.SessionID,
			LastActive: s.LastActive,
		})
	}
	return entries, nil
}

// GetHistory returns the full message sequence of a stored conversation, in order.
func (c *backendImpl) GetHistory(ctx context.Context, sessionID string) ([]model.Message, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}
	u := fmt.Sprintf("%s%s/%s", c.baseURL, PathChatHistory, url.PathEscape(sessionID))

	raw, statusCode, err := c.httpClient.Get(ctx, u, requestHeaders(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return nil, err
	}

	var resp historyRespBody
	if err := decode(raw, &resp); err != nil {
		return nil, err
	}

	msgs := make([]model.Message, 0, len(resp.Messages))
	for i, m := range resp.Messages {
		role := model.Role(m.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: message %d has role %q", ErrInvalidResponse, i, m.Role)
		}
		msgs = append(msgs, model.Message{
			Role:       role,
			Content:    m.Content,
			Sources:    toSources(m.Sources),
			Confidence: model.ClampConfidence(m.Confidence),
			Flagged:    m.Flagged,
		})
	}
	return msgs, nil
}

// UploadDocument ingests a file into the knowledge store.
func (c *backendImpl) UploadDocument(ctx context.Context, userID string, file model.File) (model.UploadResult, error) {
	u := fmt.Sprintf("%s%s?%s=%s", c.baseURL, PathDocumentUpload, fieldUserID, url.QueryEscape(userID))

	raw, statusCode, err := c.httpClient.PostMultipart(ctx, u, fileBody(userID, file), requestHeaders(ctx))
	if err != nil {
		return model.UploadResult{}, fmt.Errorf("failed to upload document: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return model.UploadResult{}, err
	}

	var resp uploadRespBody
	if err := decode(raw, &resp); err != nil {
		return model.UploadResult{}, err
	}
	if resp.TotalChunks < 0 {
		return model.UploadResult{}, fmt.Errorf("%w: negative chunk count", ErrInvalidResponse)
	}

	return model.UploadResult{
		FileName:    file.Name,
		TotalChunks: resp.TotalChunks,
		IsPermanent: resp.IsPermanent,
	}, nil
}

// ListDocuments returns every document in the knowledge base.
func (c *backendImpl) ListDocuments(ctx context.Context) ([]model.Document, error) {
	raw, statusCode, err := c.httpClient.Get(ctx, c.baseURL+PathDocuments, requestHeaders(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return nil, err
	}

	var resp documentsRespBody
	if err := decode(raw, &resp); err != nil {
		return nil, err
	}

	docs := make([]model.Document, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, model.Document{
			FileName:    d.FileName,
			TotalPages:  d.TotalPages,
			TotalChunks: d.TotalChunks,
			UploadedBy:  d.UploadedBy,
			UploadedAt:  d.UploadedAt,
			IsPermanent: d.IsPermanent,
		})
	}
	return docs, nil
}

// CheckCompliance submits a PDF for pillar-by-pillar evaluation.
func (c *backendImpl) CheckCompliance(ctx context.Context, userID string, file model.File) (model.ComplianceReport, error) {
	raw, statusCode, err := c.httpClient.PostMultipart(ctx, c.baseURL+PathCompliance, fileBody(userID, file), requestHeaders(ctx))
	if err != nil {
		return model.ComplianceReport{}, fmt.Errorf("failed to check compliance: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return model.ComplianceReport{}, err
	}

	var resp complianceRespBody
	if err := decode(raw, &resp); err != nil {
		return model.ComplianceReport{}, err
	}

	report := model.ComplianceReport{
		FileName: resp.FileName,
		Results:  make(map[string]model.PillarResult, len(resp.Results)),
		Gaps:     make([]string, 0, len(resp.Gaps)),
	}
	if report.FileName == "" {
		report.FileName = file.Name
	}
	for key, r := range resp.Results {
		report.Results[key] = model.PillarResult{
			Status: model.PillarStatus(r.Status),
			Note:   r.Note,
		}
	}
	report.Gaps = append(report.Gaps, resp.Gaps...)
	return report, nil
}

// ListAuditLogs returns the most recent audit records, newest first.
func (c *backendImpl) ListAuditLogs(ctx context.Context, limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	u := fmt.Sprintf("%s%s?limit=%s", c.baseURL, PathAudit, strconv.Itoa(limit))

	raw, statusCode, err := c.httpClient.Get(ctx, u, requestHeaders(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	if err := checkStatus(statusCode); err != nil {
		return nil, err
	}

	var resp auditRespBody
	if err := decode(raw, &resp); err != nil {
		return nil, err
	}

	logs := make([]model.AuditLog, 0, len(resp.Logs))
	for _, l := range resp.Logs {
		logs = append(logs, model.AuditLog{
			EventType: l.EventType,
			UserID:    l.UserID,
			Timestamp: l.Timestamp,
			Details:   l.Details,
		})
	}
	return logs, nil
}

func requestHeaders(ctx context.Context) map[string]string {
	id := log.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	return map[string]string{headerRequestID: id}
}

func checkStatus(statusCode int) error {
	if statusCode < 200 || statusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}
	return nil
}

func decode(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func fileBody(userID string, file model.File) pkghttp.MultipartBody {
	return pkghttp.MultipartBody{
		Fields: map[string]string{fieldUserID: userID},
		Files: []pkghttp.FilePart{{
			FieldName:   fieldFile,
			FileName:    file.Name,
			ContentType: file.ContentType,
			Content:     bytes.NewReader(file.Content),
		}},
	}
}

func toSources(in []sourceBody) []model.Source {
	out := make([]model.Source, 0, len(in))
	for _, s := range in {
		out = append(out, model.Source{
			Name:       s.Source,
			Page:       model.NormalizePage(s.Page),
			ChunkIndex: s.ChunkIndex,
		})
	}
	return out
}
