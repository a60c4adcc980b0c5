package logger

import (
	"context"

	"github.com/rs/zerolog"
)

type scopeKey struct{}

// with stores a child of the logger already carried by ctx, extended by fn
func with(ctx context.Context, fn func(zerolog.Context) zerolog.Context) context.Context {
	l := fn(C(ctx).With()).Logger()
	return context.WithValue(ctx, scopeKey{}, &l)
}

// WithRequestID tags every log line written through ctx with the HTTP request id
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("request_id", id) })
}

// WithRun tags ctx with a fixer run: its id and mode (dry-run or apply)
func WithRun(ctx context.Context, runID, mode string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		if runID != "" {
			c = c.Str("run_id", runID)
		}
		if mode != "" {
			c = c.Str("mode", mode)
		}
		return c
	})
}

// WithPath tags ctx with the file being processed
func WithPath(ctx context.Context, path string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("path", path) })
}

// C returns the logger scoped to ctx, or the root when ctx carries none
func C(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(scopeKey{}).(*Logger); ok {
			return l
		}
	}
	return Get()
}
