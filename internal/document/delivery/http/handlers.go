package http

import (
	"arkive-client/internal/model"
	"arkive-client/pkg/paginator"
	"arkive-client/pkg/response"
	"arkive-client/pkg/upload"

	"github.com/gin-gonic/gin"
)

type documentResp struct {
	FileName    string            `json:"filename"`
	TotalPages  int               `json:"total_pages"`
	TotalChunks int               `json:"total_chunks"`
	UploadedBy  string            `json:"uploaded_by"`
	UploadedAt  response.DateTime `json:"uploaded_at"`
	IsPermanent bool              `json:"is_permanent"`
	Retention   string            `json:"retention"`
}

type listResp struct {
	Documents []documentResp              `json:"documents"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type uploadResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Failed  bool   `json:"failed"`
}

// @Summary List knowledge-base documents
// @Tags Documents
// @Produce json
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Router /api/v1/documents [get]
func (h *handler) List(c *gin.Context) {
	var q paginator.PaginateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, errWrongQuery)
		return
	}

	page, p := paginator.Slice(h.uc.List(c.Request.Context()), q)

	out := listResp{
		Documents: make([]documentResp, 0, len(page)),
		Paginator: p.ToResponse(),
	}
	for _, d := range page {
		out.Documents = append(out.Documents, newDocumentResp(d))
	}
	response.OK(c, out)
}

// @Summary Upload a document
// @Description Multipart field "file". The outcome is also appended to the conversation.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} uploadResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/documents [post]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errFileRequired)
		return
	}
	file, err := upload.FromMultipart(fh)
	if err != nil {
		h.l.Warnf(ctx, "document.delivery.http.Upload: FromMultipart failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	msg, err := h.chatUC.UploadDocument(ctx, file)
	if err != nil {
		h.l.Errorf(ctx, "document.delivery.http.Upload: usecase UploadDocument failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !msg.Failed {
		h.uc.Invalidate()
	}

	response.OK(c, uploadResp{Role: string(msg.Role), Content: msg.Content, Failed: msg.Failed})
}

func newDocumentResp(d model.Document) documentResp {
	return documentResp{
		FileName:    d.FileName,
		TotalPages:  d.TotalPages,
		TotalChunks: d.TotalChunks,
		UploadedBy:  d.UploadedBy,
		UploadedAt:  response.DateTime(d.UploadedAt.Time),
		IsPermanent: d.IsPermanent,
		Retention:   d.RetentionLabel(),
	}
}
