// Package http serves /meta: liveness, build info, and what rule pack is loaded
package http

import (
	"net/http"
	"time"

	"bbcenglish/internal/core/rulepack"
	"bbcenglish/internal/core/version"
	"bbcenglish/internal/modkit/httpkit"
)

type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Pack        *rulepack.Pack // nil leaves pack out of /service
	Now         func() time.Time
}

func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	httpkit.Get(r, "/health", d.health)
	httpkit.Get(r, "/version", d.version)
	httpkit.Get(r, "/service", d.service)
}

// HealthResponse is up as long as the server answers
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"bbcenglish-api"`
	Now     string `json:"now"     example:"2026-01-02T13:05:00Z"`
}

// PackInfo summarises the loaded rule pack
type PackInfo struct {
	Name       string `json:"name"       example:"bbc-english"`
	Version    int    `json:"version"    example:"1"`
	Rules      int    `json:"rules"      example:"130"`
	Heuristics int    `json:"heuristics" example:"6"`
}

type ServiceResponse struct {
	Name    string    `json:"name"    example:"bbcenglish-api"`
	Started string    `json:"started" example:"2026-01-02T13:00:00Z"`
	Uptime  int64     `json:"uptime"  example:"300"`
	Pack    *PackInfo `json:"pack,omitempty"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (d Deps) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: d.ServiceName, Now: stamp(d.Now())}, nil
}

// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (d Deps) version(*http.Request) (any, error) { return version.Info(d.ServiceName), nil }

// @Summary Uptime and the loaded rule pack
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (d Deps) service(*http.Request) (any, error) {
	out := ServiceResponse{
		Name:    d.ServiceName,
		Started: stamp(d.StartedAt),
		Uptime:  int64(d.Now().Sub(d.StartedAt) / time.Second),
	}
	if p := d.Pack; p != nil {
		out.Pack = &PackInfo{Name: p.Meta.Name, Version: p.Version, Rules: len(p.Rules), Heuristics: len(p.Heuristics)}
	}
	return out, nil
}
