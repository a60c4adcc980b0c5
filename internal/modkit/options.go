package modkit

import "net/http"

// Option adjusts where and how an api module mounts
type Option func(*Routes)

// WithName overrides the name used in logs and the port registry
func WithName(name string) Option {
	return func(r *Routes) { r.name = name }
}

// WithPrefix mounts the module under a path prefix, e.g. "/convert"
func WithPrefix(prefix string) Option {
	return func(r *Routes) { r.prefix = prefix }
}

// WithMiddlewares runs mw, in order, in front of the module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(r *Routes) { r.mw = append(r.mw, mw...) }
}

// WithPorts injects ports owned by another module, e.g. the fixer's Converter
func WithPorts[T any](p T) Option {
	return func(r *Routes) { r.injected = p }
}

// WithRegister adds endpoints after the module's own
func WithRegister(fn func(Router)) Option {
	return func(r *Routes) { r.extra = append(r.extra, fn) }
}
