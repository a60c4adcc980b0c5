// Package logger owns the process-wide zerolog logger. Diagnostics go to stderr by
// default because stdout carries the fixer's report
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"bbcenglish/internal/platform/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type handed around the codebase
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level       string // trace..error, warning, off
	Format      string // console or json
	Service     string
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
	Static      map[string]string
}

// FromEnv reads LOG_* settings
func FromEnv() Options {
	env := config.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(env.MayString("LEVEL", "info")),
		Format:      strings.ToLower(env.MayString("FORMAT", "console")),
		Service:     env.MayString("SERVICE", ""),
		WithCaller:  env.MayBool("CALLER", false),
		SampleEvery: env.MayInt("SAMPLE_EVERY", 0),
	}
}

// WarnInvalid logs each setting in cfg that fell back to its default. Call it once the
// logger is up and the settings have been read
func WarnInvalid(l *Logger, cfg config.Conf) {
	for _, p := range cfg.Invalid() {
		l.Warn().Str("key", p.Key).Str("value", p.Value).Err(p.Err).Msg("invalid setting; using default")
	}
}

var root atomic.Pointer[Logger]

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Init builds the root logger from opt and installs it. Calling it again replaces the
// root, which is how each CLI run points diagnostics at its own stderr
func Init(opt Options) *Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	zc := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		zc = zc.Str("service", opt.Service)
	}
	for k, v := range opt.Static {
		zc = zc.Str(k, v)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	root.Store(&l)
	return &l
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	return Init(FromEnv())
}

// Named returns a child of the root tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

// ParseLevel maps a level name to zerolog. "warning" and "off" are accepted as
// aliases; anything unknown is info
func ParseLevel(s string) zerolog.Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
