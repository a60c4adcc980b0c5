package http

import (
	"net/http"

	"bbcenglish/internal/platform/net/http/bind"
)

// Query adapts a handler that needs nothing but the URL. Its result is sent with 200,
// its error through Fail
func Query(fn func(*http.Request) (any, error)) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := fn(r)
		if err != nil {
			Fail(w, r, err)
			return
		}
		Reply(w, r, http.StatusOK, out)
	}
}

// Body adapts a handler taking a decoded and validated JSON body of type T
func Body[T any](fn func(*http.Request, T) (any, error), lim bind.Limits) Handler {
	return Query(func(r *http.Request) (any, error) {
		in, err := bind.Decode[T](r, lim)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}
