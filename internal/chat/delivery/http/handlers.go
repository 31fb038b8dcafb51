package http

import (
	"arkive-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Current conversation
// @Description Messages, session binding and busy flags
// @Tags Chat
// @Produce json
// @Success 200 {object} chatResp
// @Router /api/v1/chat [get]
func (h *handler) GetChat(c *gin.Context) {
	response.OK(c, h.newChatResp(h.uc.Conversation(), h.uc.Status()))
}

// @Summary Send a query
// @Description Appends the user turn and the assistant reply. Backend failures come back as a failed reply.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body sendMessageReq true "Query"
// @Success 200 {object} messageResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/chat/messages [post]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.SendMessage: processSendMessageRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	msg, err := h.uc.SendQuery(ctx, req.Query)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.SendMessage: usecase SendQuery failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMessageResp(msg))
}

func (h *handler) NewChat(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.NewChat(ctx); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.NewChat: usecase NewChat failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(h.uc.Conversation(), h.uc.Status()))
}

func (h *handler) ListSessions(c *gin.Context) {
	response.OK(c, h.newListSessionsResp(h.uc.ListSessions(c.Request.Context())))
}

// @Summary Load a stored session
// @Tags Chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} chatResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/sessions/{session_id}/load [post]
func (h *handler) LoadSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoadSessionRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.LoadSession(ctx, req.SessionID); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.LoadSession: usecase LoadSession failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(h.uc.Conversation(), h.uc.Status()))
}
