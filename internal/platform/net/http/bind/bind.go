// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/platform/validate"
)

// DefaultMaxBytes caps a body when Limits.MaxBytes is not set
const DefaultMaxBytes = 1 << 20

// Limits tunes Decode. The zero value is strict with a 1 MiB cap
type Limits struct {
	MaxBytes     int64
	AllowUnknown bool
}

func (l Limits) max() int64 {
	if l.MaxBytes > 0 {
		return l.MaxBytes
	}
	return DefaultMaxBytes
}

// Decode reads one JSON document of type T from r's body, then validates it. Oversized
// bodies are ErrorCodeTooLarge, malformed ones ErrorCodeJSON, and invalid ones carry
// the offending field
func Decode[T any](r *http.Request, lim Limits) (T, error) {
	var v T
	defer r.Body.Close()

	limit := lim.max()
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	switch {
	case err != nil:
		return v, perr.IOf(err, "read request body")
	case int64(len(body)) > limit:
		return v, perr.Newf(perr.ErrorCodeTooLarge, "request body exceeds %d bytes", limit)
	case len(bytes.TrimSpace(body)) == 0:
		return v, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if !lim.AllowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		return v, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return v, perr.JSONErrf("unexpected data after the JSON document")
	}
	return v, validate.Struct(v)
}
