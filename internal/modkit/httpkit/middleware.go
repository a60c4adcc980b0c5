package httpkit

import (
	"net/http"
	"time"

	"bbcenglish/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string      // empty allows any origin
	SlowRequest time.Duration // access log warns at or above this, 0 disables
	MaxInFlight int           // concurrent requests in the scope, 0 means unlimited
}

// CommonStack returns the middleware every /api/v1 module runs behind. Request ids,
// panic recovery and timeouts are mounted once on the server by middleware.Defaults
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.AccessLog(o.SlowRequest),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
