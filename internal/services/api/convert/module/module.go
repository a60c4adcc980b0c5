// Package module mounts the convert endpoint. The Converter port comes from the fixer module
package module

import (
	"bbcenglish/internal/modkit"

	"bbcenglish/internal/services/api/convert/domain"
	converthttp "bbcenglish/internal/services/api/convert/http"
)

// Ports are the ports this module needs injected via modkit.WithPorts
type Ports struct {
	Converter domain.ConverterPort
}

// Options holds module settings
type Options struct {
	MaxBytes int64 // request body limit, 0 keeps the platform default
}

// Module serves POST /convert
type Module struct {
	modkit.Routes
}

// New builds the convert module. It panics when no Converter port is injected
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	rt := modkit.NewRoutes("convert", "/convert", opts...)
	ports, ok := rt.Injected().(Ports)
	if !ok || ports.Converter == nil {
		panic("convert: Converter port is required (use modkit.WithPorts(convert.Ports{...}))")
	}
	deps.Logger().Debug().Int64("max_bytes", o.MaxBytes).Msg("convert module ready")
	return &Module{rt.Serve(func(r modkit.Router) {
		converthttp.Register(r, converthttp.Deps{Converter: ports.Converter, MaxBytes: o.MaxBytes})
	})}
}

// Ports is nil; convert only consumes
func (m *Module) Ports() any { return nil }
