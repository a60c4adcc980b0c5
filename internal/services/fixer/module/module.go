// Package module wires the fixer service: rule pack, rewriter, filesystem adapter and service
package module

import (
	"bbcenglish/internal/core/rewrite"
	"bbcenglish/internal/core/rulepack"
	"bbcenglish/internal/modkit"
	"bbcenglish/internal/modkit/httpkit"
	pstrings "bbcenglish/internal/platform/strings"
	"bbcenglish/internal/services/fixer/domain"
	"bbcenglish/internal/services/fixer/repo"
	"bbcenglish/internal/services/fixer/service"
)

// Ports exposed by the fixer module
type Ports struct {
	Runner    domain.RunnerPort
	Converter domain.ConverterPort
	Pack      *rulepack.Pack
}

// Module implements the fixer service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the fixer from config defaults merged with overrides. It fails when the
// rule pack cannot be loaded or compiled
func New(deps modkit.Deps, overrides Options) (*Module, error) {
	opts := FromConfig(deps.Cfg).merge(overrides)

	pack, err := loadPack(opts.RulesPath)
	if err != nil {
		return nil, err
	}
	deps.Logger().Debug().
		Str("pack", pack.Meta.Name).
		Int("rules", len(pack.Rules)).
		Str("source", pstrings.Or(opts.RulesPath, "embedded")).
		Msg("rule pack loaded")

	svc := service.New(repo.NewFS(), rewrite.New(pack))
	return &Module{
		deps: deps,
		opts: opts,
		ports: Ports{
			Runner:    svc,
			Converter: svc,
			Pack:      pack,
		},
	}, nil
}

func loadPack(path string) (*rulepack.Pack, error) {
	if path == "" {
		return rulepack.Load()
	}
	return rulepack.LoadFile(path)
}

// Options returns the resolved defaults
func (m *Module) Options() Options { return m.opts }

// RunOptions builds batch options for root from the resolved defaults
func (m *Module) RunOptions(root string, mode domain.Mode) domain.Options {
	return domain.Options{
		Root:       root,
		Mode:       mode,
		Extensions: m.opts.Extensions,
		Exclude:    m.opts.Exclude,
		Workers:    m.opts.Workers,
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "fixer" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; the fixer has no routes of its own
func (m *Module) MountRoutes(httpkit.Router) {}
