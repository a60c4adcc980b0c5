// @title         bbcenglish API
// @version       1.0
// @description   Converts American spellings in // comment lines to British English
// @BasePath      /api/v1

// Command bbcenglish-api serves the comment rewriter over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bbcenglish/internal/core/version"
	"bbcenglish/internal/platform/config"
	"bbcenglish/internal/platform/logger"
	phttp "bbcenglish/internal/platform/net/http"
	"bbcenglish/internal/platform/net/middleware"

	"bbcenglish/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("BBC_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timeout := apiCfg.MayDuration("TIMEOUT", 30*time.Second)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults(timeout)...)
	})

	if err := api.Mount(srv.Router(), api.OptionsFromConfig(root)); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}
	logger.WarnInvalid(l, root)

	l.Info().Str("build", version.Info("bbcenglish-api").String()).Str("addr", srv.Addr()).Msg("starting")
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
