package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "bbcenglish/internal/platform/errors"
	phttp "bbcenglish/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func newRouter(t *testing.T, maxBytes int64) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	MountAPIV1(phttp.AdaptChi(mux), CommonStack(StackOptions{MaxInFlight: 4}), func(api Router) {
		MountUnder(api, "/echo", nil, func(r Router) {
			Get(r, "/", func(*http.Request) (any, error) { return "color", nil })
			Get(r, "/word/{word}", func(req *http.Request) (any, error) { return Param(req, "word"), nil })
			Get(r, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("no rule for %q", "colour") })
			PostJSON(r, "/", func(_ *http.Request, in echoIn) (any, error) { return strings.ToUpper(in.Text), nil }, maxBytes)
		})
	})
	return mux
}

func do(mux http.Handler, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Origin", "http://example.test")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestMountAPIV1_Routes(t *testing.T) {
	mux := newRouter(t, 0)

	rec, env := do(mux, http.MethodGet, "/api/v1/echo/", "")
	if rec.Code != http.StatusOK || env.Data != "color" {
		t.Fatalf("GET = %d %+v", rec.Code, env)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("CORS header missing: %v", rec.Header())
	}

	rec, env = do(mux, http.MethodGet, "/api/v1/echo/word/Color", "")
	if rec.Code != http.StatusOK || env.Data != "Color" {
		t.Fatalf("param = %d %+v", rec.Code, env)
	}

	rec, env = do(mux, http.MethodPost, "/api/v1/echo/", `{"text":"colour"}`)
	if rec.Code != http.StatusOK || env.Data != "COLOUR" {
		t.Fatalf("POST = %d %+v", rec.Code, env)
	}

	rec, env = do(mux, http.MethodGet, "/api/v1/echo/missing", "")
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("missing = %d %+v", rec.Code, env)
	}
}

func TestPostJSON_Errors(t *testing.T) {
	mux := newRouter(t, 24)

	cases := []struct {
		name, body string
		status     int
	}{
		{"invalid json", `{"text":`, http.StatusBadRequest},
		{"missing field", `{}`, http.StatusBadRequest},
		{"unknown field", `{"text":"a","x":1}`, http.StatusBadRequest},
		{"too large", `{"text":"behavior behavior"}`, http.StatusRequestEntityTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, env := do(mux, http.MethodPost, "/api/v1/echo/", c.body)
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d (%+v)", rec.Code, c.status, env)
			}
			if env.Error == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

func TestMountUnder_ScopedMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scope", "rules")
			next.ServeHTTP(w, r)
		})
	}
	root := phttp.AdaptChi(mux)
	MountUnder(root, "/rules", []func(http.Handler) http.Handler{tag}, func(r Router) {
		Get(r, "/", func(*http.Request) (any, error) { return 1, nil })
	})
	Get(root, "/health", func(*http.Request) (any, error) { return "ok", nil })

	rec, _ := do(mux, http.MethodGet, "/rules/", "")
	if rec.Header().Get("X-Scope") != "rules" {
		t.Fatalf("scoped middleware did not run")
	}
	rec, _ = do(mux, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Header().Get("X-Scope") != "" {
		t.Fatalf("middleware leaked outside its scope: %d %v", rec.Code, rec.Header())
	}
}
