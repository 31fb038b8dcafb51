package response

import (
	"errors"
	"net/http"

	pkgErrors "arkive-client/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err. HTTPErrors keep their status and message; anything else is a 500
// with a generic message so internal detail never reaches the client.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}

// ErrorWithMap writes the mapped HTTPError for err, falling back to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	for target, httpErr := range mapping {
		if errors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// PanicError writes a 500 for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   MessageInternalError,
	})
}
