package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgErrors "arkive-client/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var r Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, gin.H{"a": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	r := decodeResp(t, w)
	assert.Equal(t, 0, r.ErrorCode)
	assert.Equal(t, map[string]any{"a": float64(1)}, r.Data)
}

func TestErrorHidesInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("dial tcp 10.0.0.1:8000: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MessageInternalError, decodeResp(t, w).Message)
}

func TestErrorWithMap(t *testing.T) {
	errBusy := errors.New("busy")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorWithMap(c, errBusy, ErrorMapping{errBusy: pkgErrors.NewHTTPError(http.StatusConflict, "Busy")})

	assert.Equal(t, http.StatusConflict, w.Code)
	r := decodeResp(t, w)
	assert.Equal(t, http.StatusConflict, r.ErrorCode)
	assert.Equal(t, "Busy", r.Message)
}

func TestDateTimeMarshal(t *testing.T) {
	ts := time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)
	raw, err := json.Marshal(DateTime(ts))
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-16 09:30:00"`, string(raw))
}

func TestDateTimeMissingIsNull(t *testing.T) {
	body := struct {
		LastActive DateTime `json:"last_active"`
	}{}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"last_active":null}`, string(raw))
}
