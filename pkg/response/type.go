package response

import (
	"encoding/json"
	"time"

	"arkive-client/pkg/errors"
)

// Resp is the envelope every view-model route answers with. ErrorCode is 0 on
// success; otherwise it carries the HTTPError code the UI switches on (409 while
// a chat or upload is in flight, 404 for unknown documents and sessions).
// Data holds the view model itself and is omitted on failure.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps usecase errors to the HTTPError a handler reports for them.
type ErrorMapping map[error]*errors.HTTPError

// DateTime renders backend timestamps in the UI's local time. Sessions and
// documents the backend returned without a timestamp render as null.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Local().Format(DateTimeFormat))
}
