package http

import (
	"arkive-client/internal/chat"
	"arkive-client/internal/model"
	"arkive-client/pkg/response"
)

type sendMessageReq struct {
	Query string `json:"query" binding:"required"`
}

type loadSessionReq struct {
	SessionID string
}

type sourceResp struct {
	Name       string `json:"name"`
	Page       int    `json:"page"`
	ChunkIndex int    `json:"chunk_index"`
}

type messageResp struct {
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	Sources    []sourceResp      `json:"sources"`
	Confidence int               `json:"confidence"`
	Flagged    bool              `json:"flagged"`
	Failed     bool              `json:"failed"`
	CreatedAt  response.DateTime `json:"created_at"`
}

type statusResp struct {
	Sending   bool `json:"sending"`
	Uploading bool `json:"uploading"`
	Checking  bool `json:"checking"`
}

type chatResp struct {
	SessionID string        `json:"session_id,omitempty"`
	State     string        `json:"state"`
	OwnerID   string        `json:"owner_id"`
	Messages  []messageResp `json:"messages"`
	Status    statusResp    `json:"status"`
}

type sessionResp struct {
	SessionID  string            `json:"session_id"`
	LastActive response.DateTime `json:"last_active"`
}

func (h *handler) newMessageResp(m model.Message) messageResp {
	sources := make([]sourceResp, 0, len(m.Sources))
	for _, s := range m.Sources {
		sources = append(sources, sourceResp{Name: s.Name, Page: s.Page, ChunkIndex: s.ChunkIndex})
	}
	return messageResp{
		Role:       string(m.Role),
		Content:    m.Content,
		Sources:    sources,
		Confidence: m.Confidence,
		Flagged:    m.Flagged,
		Failed:     m.Failed,
		CreatedAt:  response.DateTime(m.CreatedAt),
	}
}

func (h *handler) newChatResp(conv model.Conversation, st chat.Status) chatResp {
	msgs := make([]messageResp, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		msgs = append(msgs, h.newMessageResp(m))
	}

	status := statusResp{Sending: st.Sending, Uploading: st.Uploading}
	if h.complianceUC != nil {
		status.Checking = h.complianceUC.Snapshot().Checking
	}

	return chatResp{
		SessionID: conv.ID,
		State:     string(conv.State),
		OwnerID:   conv.OwnerID,
		Messages:  msgs,
		Status:    status,
	}
}

func (h *handler) newListSessionsResp(entries []model.SessionEntry) []sessionResp {
	out := make([]sessionResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, sessionResp{SessionID: e.ID, LastActive: response.DateTime(e.LastActive.Time)})
	}
	return out
}
