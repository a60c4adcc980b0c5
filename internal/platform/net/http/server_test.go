package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bbcenglish/internal/platform/config"
	phttp "bbcenglish/internal/platform/net/http"
)

func testConf(t *testing.T) config.Conf {
	t.Helper()
	t.Setenv("TEST_API_PORT", "127.0.0.1:0")
	return config.New().Prefix("TEST_API_")
}

func TestNewServer_DefaultsAndMux(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("UNSET_API_"))
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}
	r := srv.Router()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	r.Route("/api", func(sub phttp.Router) {
		sub.Post("/echo", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.Copy(w, r.Body)
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/api/echo", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET on POST route, got %d", rec.Code)
	}
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv := phttp.NewServer(testConf(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestMountProfiler_Enabled(t *testing.T) {
	srv := phttp.NewServer(testConf(t))
	r := srv.Router()
	phttp.MountProfiler(r, "/debug")

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pprof index, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("profiler leaked outside its prefix: %d", rec.Code)
	}
}
