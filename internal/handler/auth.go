package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JamesKha/micro-credentials-platform-back/internal/basicauth"
	"github.com/JamesKha/micro-credentials-platform-back/internal/repository"
	"github.com/JamesKha/micro-credentials-platform-back/internal/service"
)

// basicChallenge is sent with every 401 so clients know to retry with
// Basic credentials.
const basicChallenge = `Basic realm="micro-credentials", charset="UTF-8"`

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

type authResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserInfo    userInfo `json:"user_info"`
}

// Authenticate serves GET /auth. Credentials arrive as
// Authorization: Basic base64(email:password).
func (h *authHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	email, password, ok := basicauth.Parse(r.Header.Get("Authorization"))
	if !ok {
		w.Header().Set("WWW-Authenticate", basicChallenge)
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.authService.Authenticate(email, password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			w.Header().Set("WWW-Authenticate", basicChallenge)
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			slog.Error("authentication lookup failed", "error", err)
			writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
		}
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate access token", "error", err, "user_id", user.ID)
		writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	slog.Info("user authenticated", "user_id", user.ID, "email", user.Email)

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		UserInfo:    newUserInfo(user),
	})
}
