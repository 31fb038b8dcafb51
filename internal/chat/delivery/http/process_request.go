package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSendMessageRequest(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processLoadSessionRequest(c *gin.Context) (loadSessionReq, error) {
	req := loadSessionReq{SessionID: strings.TrimSpace(c.Param("session_id"))}
	if req.SessionID == "" {
		return req, errWrongBody
	}
	return req, nil
}
