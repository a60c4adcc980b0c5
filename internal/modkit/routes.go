package modkit

import (
	"net/http"

	"bbcenglish/internal/modkit/httpkit"
	str "bbcenglish/internal/platform/strings"
)

// Router is the router api modules mount on
type Router = httpkit.Router

// Routes is the routing half of an api module. Modules embed it, which gives them
// MountRoutes and Name, and add their own Ports
type Routes struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	injected any
	own      func(Router)
	extra    []func(Router)
}

// NewRoutes applies opts over the module's default name and prefix
func NewRoutes(name, prefix string, opts ...Option) Routes {
	r := Routes{name: name, prefix: prefix}
	for _, o := range opts {
		o(&r)
	}
	r.mw = append([]func(http.Handler) http.Handler(nil), r.mw...)
	return r
}

// Serve sets the module's own endpoints, registered before any WithRegister extras
func (r Routes) Serve(fn func(Router)) Routes {
	r.own = fn
	return r
}

// Injected returns whatever WithPorts supplied, or nil
func (r Routes) Injected() any { return r.injected }

func (r Routes) Name() string   { return r.name }
func (r Routes) Prefix() string { return r.prefix }

// MountRoutes mounts the module under its prefix behind its middleware
func (r Routes) MountRoutes(rt Router) {
	httpkit.MountUnder(rt, str.MustPrefix(r.prefix), r.mw, func(sub Router) {
		if r.own != nil {
			r.own(sub)
		}
		for _, fn := range r.extra {
			fn(sub)
		}
	})
}
