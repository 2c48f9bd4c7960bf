package middleware

import (
	"log/slog"
	"net/http"
)

// Recover converts a handler panic into a 503 with a generic body.
// The process keeps serving; details stay in the server log.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec != nil {
				slog.Error("handler panic",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"msg":"Service unavailable"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
