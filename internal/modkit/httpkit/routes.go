// Package httpkit is what fixer modules register routes with. Modules import it
// instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "bbcenglish/internal/platform/net/http"
	"bbcenglish/internal/platform/net/http/bind"
)

type (
	Router   = phttp.Router
	Envelope = phttp.Envelope
)

// Param returns a path parameter of the matched route
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }

// Get mounts a body-less handler; its result goes out in the envelope
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, phttp.Query(fn))
}

// PostJSON mounts a handler that receives the decoded and validated body. Bodies
// above maxBytes are rejected with 413; maxBytes <= 0 keeps the 1 MiB default
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), maxBytes int64) {
	r.Post(path, phttp.Body(fn, bind.Limits{MaxBytes: maxBytes}))
}

// MountUnder mounts a subrouter at prefix behind the given middleware
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts the versioned api scope:
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
//	  convert.MountRoutes(api)
//	})
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/v1", mw, mount)
}
