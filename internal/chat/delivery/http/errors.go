package http

import (
	"context"
	"errors"
	"net/http"

	"arkive-client/internal/chat"
	pkgErrors "arkive-client/pkg/errors"
)

var (
	errEmptyQuery    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Query must not be empty")
	errChatInFlight  = pkgErrors.NewHTTPError(http.StatusConflict, "A query is already in flight")
	errLoadSession   = pkgErrors.NewHTTPError(http.StatusBadGateway, "Could not load the session")
	errSwitchTimeout = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Conversation is busy, try again")
	errWrongBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, chat.ErrChatInFlight):
		return errChatInFlight
	case errors.Is(err, chat.ErrLoadSession):
		return errLoadSession
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errSwitchTimeout
	default:
		return err
	}
}
