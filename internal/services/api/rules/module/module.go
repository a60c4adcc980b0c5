// Package module mounts the read-only rule table endpoints
package module

import (
	"bbcenglish/internal/core/rulepack"
	"bbcenglish/internal/modkit"

	ruleshttp "bbcenglish/internal/services/api/rules/http"
)

// Ports are injected via modkit.WithPorts
type Ports struct {
	Pack *rulepack.Pack
}

// Module serves /rules from the injected pack
type Module struct {
	modkit.Routes
	pack *rulepack.Pack
}

// New builds the rules module. It panics when no pack is injected
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	rt := modkit.NewRoutes("rules", "/rules", opts...)
	ports, ok := rt.Injected().(Ports)
	if !ok || ports.Pack == nil {
		panic("rules: Pack port is required (use modkit.WithPorts(rules.Ports{...}))")
	}
	return &Module{
		Routes: rt.Serve(func(r modkit.Router) { ruleshttp.Register(r, ports.Pack) }),
		pack:   ports.Pack,
	}
}

func (m *Module) Ports() any { return Ports{Pack: m.pack} }
