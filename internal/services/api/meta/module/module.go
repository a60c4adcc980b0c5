// Package module mounts /meta: health, build info, and the loaded rule pack
package module

import (
	"time"

	"bbcenglish/internal/core/rulepack"
	"bbcenglish/internal/modkit"

	metahttp "bbcenglish/internal/services/api/meta/http"
)

// Ports lets the caller hand the loaded rule pack to /meta/service
type Ports struct {
	Pack *rulepack.Pack
}

type Module struct {
	modkit.Routes
}

// New builds the meta module; uptime counts from here. The pack port is optional
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	rt := modkit.NewRoutes("meta", "/meta", opts...)
	ports, _ := rt.Injected().(Ports)
	started := time.Now()
	return &Module{rt.Serve(func(r modkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "bbcenglish-api",
			StartedAt:   started,
			Pack:        ports.Pack,
		})
	})}
}

func (m *Module) Ports() any { return nil }
