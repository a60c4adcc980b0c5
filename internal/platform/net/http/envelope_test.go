package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "bbcenglish/internal/platform/errors"
	pnet "bbcenglish/internal/platform/net"
	phttp "bbcenglish/internal/platform/net/http"
	"bbcenglish/internal/platform/net/http/bind"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	if env.StatusCode != rec.Code {
		t.Fatalf("envelope status %d, header status %d", env.StatusCode, rec.Code)
	}
	return env
}

func TestReply(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-7"))
	rec := httptest.NewRecorder()
	phttp.Reply(rec, req, http.StatusCreated, map[string]int{"changes": 2})

	env := decodeEnvelope(t, rec)
	if env.Status != "Created" || env.RequestID != "req-7" || env.Code != "" || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
	if data, _ := env.Data.(map[string]any); data["changes"] != float64(2) {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestFail_StatusFollowsCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
		code perr.ErrorCode
	}{
		{perr.Conflictf("a.rs changed on disk"), http.StatusConflict, perr.ErrorCodeConflict},
		{perr.NotFoundf("no rule"), http.StatusNotFound, perr.ErrorCodeNotFound},
		{perr.Newf(perr.ErrorCodeTooLarge, "too big"), http.StatusRequestEntityTooLarge, perr.ErrorCodeTooLarge},
		{errors.New("boom"), http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.Fail(rec, httptest.NewRequest("GET", "/", nil), c.err)
		env := decodeEnvelope(t, rec)
		if rec.Code != c.want || env.Code != c.code {
			t.Fatalf("%v: got %d/%q, want %d/%q", c.err, rec.Code, env.Code, c.want, c.code)
		}
	}
}

func TestFail_FieldAndRequestID(t *testing.T) {
	req := httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-9"))
	rec := httptest.NewRecorder()
	phttp.Fail(rec, req, perr.WithField(perr.Validationf("text is required"), "text"))

	env := decodeEnvelope(t, rec)
	if env.Field != "text" || env.Error != "text is required" || env.RequestID != "req-9" {
		t.Fatalf("envelope = %+v", env)
	}
	if rec.Header().Get("X-Request-ID") != "req-9" {
		t.Fatalf("missing X-Request-ID header")
	}
}

type fixBody struct {
	Text string `json:"text" validate:"required"`
}

func TestBody(t *testing.T) {
	h := phttp.Body(func(_ *http.Request, in fixBody) (any, error) {
		return strings.ToUpper(in.Text), nil
	}, bind.Limits{MaxBytes: 64})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"color"}`)))
	if env := decodeEnvelope(t, rec); rec.Code != http.StatusOK || env.Data != "COLOR" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{}`)))
	if env := decodeEnvelope(t, rec); env.Code != perr.ErrorCodeValidation || env.Field != "text" {
		t.Fatalf("missing text: %+v", env)
	}

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"`+strings.Repeat("x", 80)+`"}`)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body: %d", rec.Code)
	}
}

func TestQuery_Error(t *testing.T) {
	h := phttp.Query(func(*http.Request) (any, error) { return nil, perr.InvalidArgf("bad mode") })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if env := decodeEnvelope(t, rec); rec.Code != http.StatusUnprocessableEntity || env.Error != "bad mode" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}
