// Package middleware is the api's request stack. chi supplies the pieces; this
// package decides their order and defaults
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "bbcenglish/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is one layer of the stack
type Middleware = func(http.Handler) http.Handler

// RequestID reuses an incoming X-Request-ID or mints one
func RequestID() Middleware { return chimw.RequestID }

// Throttle caps concurrent conversions; requests over the cap get 429
func Throttle(limit int) Middleware { return chimw.Throttle(limit) }

// CORSOptions holds the allow lists; empty fields take read-only api defaults
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}

// Defaults is mounted once on the server mux, ahead of every route. Conversions are
// pure CPU, so timeout bounds how long one body may hold a worker
func Defaults(timeout time.Duration) []Middleware {
	return []Middleware{
		chimw.RealIP,
		chimw.RequestID,
		RecoverJSON,
		chimw.Timeout(timeout),
		chimw.NewCompressor(flate.DefaultCompression).Handler,
		chimw.NoCache,
	}
}
