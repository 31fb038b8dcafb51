package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPError(t *testing.T) {
	e := NewHTTPError(http.StatusConflict, "busy")
	assert.Equal(t, http.StatusConflict, e.StatusCode)
	assert.Equal(t, "http error 409: busy", e.Error())

	custom := NewHTTPError(120001, "file must be a PDF")
	assert.Equal(t, http.StatusBadRequest, custom.StatusCode)

	withStatus := NewHTTPErrorWithStatus(120002, "check failed", http.StatusBadGateway)
	assert.Equal(t, http.StatusBadGateway, withStatus.StatusCode)

	var target *HTTPError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", e), &target))
	assert.Equal(t, "busy", target.Message)
}
