package http

import (
	"encoding/json"
	"net/http"

	perr "bbcenglish/internal/platform/errors"
	pnet "bbcenglish/internal/platform/net"
)

// Envelope wraps every api response, successful or not
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Reply writes data inside a success envelope
func Reply(w http.ResponseWriter, r *http.Request, status int, data any) {
	write(w, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       data,
	})
}

// Fail writes err as an error envelope; the status follows the error code
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	status, wire := perr.HTTPStatus(err), perr.WireFrom(err)
	reqID := pnet.RequestID(r.Context())
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	write(w, Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       wire.Code,
		Error:      wire.Message,
		Field:      wire.Field,
		RequestID:  reqID,
	})
}

func write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(env.StatusCode)
	_ = json.NewEncoder(w).Encode(env)
}
