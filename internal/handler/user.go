package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JamesKha/micro-credentials-platform-back/internal/model"
	"github.com/JamesKha/micro-credentials-platform-back/internal/service"
	"github.com/JamesKha/micro-credentials-platform-back/internal/validation"
)

type userHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService) *userHandler {
	return &userHandler{
		authService: authService,
		userService: userService,
	}
}

// userInfo is the public view of an account. The password hash never
// leaves the server.
type userInfo struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	LearnerData    model.LearnerData     `json:"learnerData"`
	InstructorData *model.InstructorData `json:"instructorData"`
}

func newUserInfo(u *model.User) userInfo {
	return userInfo{
		Name:           u.Name,
		Email:          u.Email,
		LearnerData:    u.LearnerData,
		InstructorData: u.InstructorData,
	}
}

type registerRequest struct {
	UserInfo struct {
		Name  json.RawMessage `json:"name"`
		Email json.RawMessage `json:"email"`
	} `json:"userInfo"`
	Password     json.RawMessage `json:"password"`
	IsInstructor json.RawMessage `json:"isInstructor"`
}

// Register serves POST /user.
func (h *userHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	user, err := h.authService.Register(validation.RegistrationPayload{
		Name:         req.UserInfo.Name,
		Email:        req.UserInfo.Email,
		Password:     req.Password,
		IsInstructor: req.IsInstructor,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeMessage(w, http.StatusForbidden, err.Error())
		case validation.IsValidationError(err):
			writeMessage(w, http.StatusNotAcceptable, err.Error())
		default:
			slog.Error("registration failed", "error", err)
			writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "is_instructor", user.IsInstructor)

	writeJSON(w, http.StatusCreated, map[string]string{"userUID": user.ID})
}

// List serves GET /.
func (h *userHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	infos := make([]userInfo, 0, len(users))
	for i := range users {
		infos = append(infos, newUserInfo(&users[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Success",
		"users":   infos,
	})
}

// DeleteAll serves DELETE /. Removing zero records is still a success.
func (h *userHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.userService.DeleteAll()
	if err != nil {
		slog.Error("failed to delete users", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Service unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Success",
		"deleted": count,
	})
}

// NotHandled answers every route the table above doesn't cover.
func (h *userHandler) NotHandled(w http.ResponseWriter, r *http.Request) {
	slog.Warn("request not handled", "method", r.Method, "path", r.URL.Path)
	writeMessage(w, http.StatusBadRequest, "Request not handled")
}
