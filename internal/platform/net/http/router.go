// Package http is the api's transport layer: a chi-backed router facade, the JSON
// envelope every endpoint answers with, and the server lifecycle
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the plain handler func modules register
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount their routes on. It hides chi from everything but this package
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)
	Mount(prefix string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Route(prefix string, fn func(Router))
	Mux() http.Handler
}

type chiRouter struct{ chi.Router }

// AdaptChi wraps a chi mux (or sub-router) as a Router
func AdaptChi(m chi.Router) Router { return chiRouter{m} }

func (c chiRouter) Get(path string, h Handler)  { c.Router.Get(path, h) }
func (c chiRouter) Post(path string, h Handler) { c.Router.Post(path, h) }
func (c chiRouter) Mux() http.Handler           { return c.Router }

func (c chiRouter) Route(prefix string, fn func(Router)) {
	c.Router.Route(prefix, func(sub chi.Router) { fn(chiRouter{sub}) })
}

// Param returns the named path parameter, e.g. "american" in /rules/{american}
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }
