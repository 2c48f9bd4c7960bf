package routes

import (
	"net/http"

	"github.com/JamesKha/micro-credentials-platform-back/internal/app"
	"github.com/JamesKha/micro-credentials-platform-back/internal/handler"
	"github.com/JamesKha/micro-credentials-platform-back/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	user := handler.NewUserHandler(app.AuthService, app.UserService)

	mux := http.NewServeMux()

	// Credential-bearing endpoints are rate limited per IP
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /{$}", user.List)
	mux.HandleFunc("GET /auth", rateLimiter(auth.Authenticate))
	mux.HandleFunc("POST /user", rateLimiter(user.Register))
	mux.HandleFunc("DELETE /{$}", user.DeleteAll)

	// Everything else answers 400 with a generic message
	mux.HandleFunc("/{path...}", user.NotHandled)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Recover,
	)
}
