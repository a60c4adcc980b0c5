package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/platform/logger"
	phttp "bbcenglish/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 error envelope and logs the stack on the request logger
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			phttp.Fail(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
