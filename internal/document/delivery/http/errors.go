package http

import (
	"errors"
	"net/http"

	"arkive-client/internal/chat"
	pkgErrors "arkive-client/pkg/errors"
	"arkive-client/pkg/upload"
)

var (
	errFileRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "File is required")
	errFileTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "File is too large")
	errWrongQuery   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrFileRequired):
		return errFileRequired
	case errors.Is(err, upload.ErrFileTooLarge):
		return errFileTooLarge
	default:
		return err
	}
}
