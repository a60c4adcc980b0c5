package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bbcenglish/internal/platform/config"
	"bbcenglish/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const shutdownGrace = 10 * time.Second

// Server owns the chi mux and the listening http.Server
type Server struct {
	mux *chi.Mux
	srv *http.Server
}

// NewServer reads PORT (default :4000) and READ_HEADER_TIMEOUT from cfg. Each setup
// func gets the mux before any route is added, which is where middleware goes
func NewServer(cfg config.Conf, setup ...func(*chi.Mux)) *Server {
	mux := chi.NewRouter()
	for _, fn := range setup {
		fn(mux)
	}
	return &Server{
		mux: mux,
		srv: &http.Server{
			Addr:              cfg.MayString("PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
	}
}

func (s *Server) Router() Router { return AdaptChi(s.mux) }
func (s *Server) Addr() string   { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http").With().Str("addr", s.srv.Addr).Logger()
	failed := make(chan error, 1)
	go func() {
		log.Info().Msg("listening")
		failed <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-failed:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	drain, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.srv.Shutdown(drain)
}

// MountProfiler serves net/http/pprof under prefix, e.g. /debug/pprof/
func MountProfiler(r Router, prefix string) {
	r.Mount(prefix, chimw.Profiler())
}
