// Package api provides the HTTP API for the application
package api

import (
	"time"

	"bbcenglish/internal/platform/config"
	"bbcenglish/internal/platform/logger"
	phttp "bbcenglish/internal/platform/net/http"

	"bbcenglish/internal/modkit"
	"bbcenglish/internal/modkit/httpkit"
	"bbcenglish/internal/modkit/module"
	"bbcenglish/internal/modkit/swaggerkit"

	convertmod "bbcenglish/internal/services/api/convert/module"
	metamod "bbcenglish/internal/services/api/meta/module"
	rulesmod "bbcenglish/internal/services/api/rules/module"
	fixermod "bbcenglish/internal/services/fixer/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf // root view; modules add their own prefixes
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	MaxBytes       int64
	CORSOrigins    []string
	SlowRequest    time.Duration
	MaxInFlight    int
	Fixer          fixermod.Options
}

// OptionsFromConfig reads BBC_API_* settings
func OptionsFromConfig(root config.Conf) Options {
	ac := root.Prefix("BBC_API_")
	return Options{
		Config:         root.Prefix("BBC_"),
		EnableSwagger:  ac.MayBool("SWAGGER", false),
		EnableProfiler: ac.MayBool("PROFILER", false),
		MaxBytes:       ac.MayInt64("MAX_BYTES", 1<<20),
		CORSOrigins:    ac.MayCSV("CORS_ORIGINS", nil),
		SlowRequest:    ac.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		MaxInFlight:    ac.MayInt("MAX_IN_FLIGHT", 0),
	}
}

// Mount builds the fixer and mounts every api module onto r. It fails only when the
// rule pack cannot be loaded
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{Log: opt.Logger, Cfg: opt.Config}

	fixer, err := fixermod.New(deps, opt.Fixer)
	if err != nil {
		return err
	}
	fp := module.MustPortsOf[fixermod.Ports](fixer)

	mods := []module.Module{
		fixer,
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Pack: fp.Pack})),
		convertmod.New(deps, convertmod.Options{MaxBytes: opt.MaxBytes},
			modkit.WithPorts(convertmod.Ports{Converter: fp.Converter})),
		rulesmod.New(deps, modkit.WithPorts(rulesmod.Ports{Pack: fp.Pack})),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	if opt.EnableProfiler {
		phttp.MountProfiler(r, "/debug")
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: opt.SlowRequest,
		MaxInFlight: opt.MaxInFlight,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().
		Int("rules", len(fp.Pack.Rules)).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
	return nil
}
