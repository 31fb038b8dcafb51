package http

import (
	"errors"
	"net/http"

	"arkive-client/internal/compliance"
	pkgErrors "arkive-client/pkg/errors"
	"arkive-client/pkg/upload"
)

var (
	errFileRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "File is required")
	errFileTooLarge   = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "File is too large")
	errNotPDF         = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, compliance.MsgNotPDF)
	errNoFileSelected = pkgErrors.NewHTTPError(http.StatusBadRequest, "Select a PDF first")
	errCheckInFlight  = pkgErrors.NewHTTPError(http.StatusConflict, "A compliance check is already running")
	errCheckFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, compliance.MsgCheckFailed)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, compliance.ErrNotPDF):
		return errNotPDF
	case errors.Is(err, compliance.ErrNoFileSelected):
		return errNoFileSelected
	case errors.Is(err, compliance.ErrCheckInFlight):
		return errCheckInFlight
	case errors.Is(err, compliance.ErrCheckFailed):
		return errCheckFailed
	default:
		return err
	}
}
