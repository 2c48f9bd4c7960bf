package middleware

import "net/http"

// Chain wraps h in the given middleware so they run in the order
// listed, outermost first.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	wrapped := h
	// Wrap from the inside out so the first middleware listed sees the
	// request first.
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}
