package http

import (
	"arkive-client/pkg/response"
	"arkive-client/pkg/upload"

	"github.com/gin-gonic/gin"
)

// Get returns the selected file, the last report and any visible error.
func (h *handler) Get(c *gin.Context) {
	response.OK(c, h.newSnapshotResp())
}

// @Summary Select the policy PDF
// @Description Multipart field "file". The type is sniffed from the content; non-PDFs are rejected without contacting the backend.
// @Tags Compliance
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} snapshotResp
// @Failure 415 {object} response.Resp
// @Router /api/v1/compliance/file [post]
func (h *handler) SelectFile(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errFileRequired)
		return
	}
	file, err := upload.FromMultipart(fh)
	if err != nil {
		h.l.Warnf(ctx, "compliance.delivery.http.SelectFile: FromMultipart failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.SelectFile(file); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newSnapshotResp())
}

// @Summary Run the compliance check
// @Tags Compliance
// @Produce json
// @Success 200 {object} scorecardResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/compliance/check [post]
func (h *handler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.uc.Check(ctx)
	if err != nil {
		h.l.Warnf(ctx, "compliance.delivery.http.Check: usecase Check failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newScorecardResp(sc))
}

func (h *handler) Reset(c *gin.Context) {
	if err := h.uc.Reset(); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newSnapshotResp())
}
