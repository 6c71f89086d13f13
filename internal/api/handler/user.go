package handler

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/userbinhq/userbin/internal/api/apierr"
	"github.com/userbinhq/userbin/internal/api/request"
	"github.com/userbinhq/userbin/internal/api/response"
	"github.com/userbinhq/userbin/internal/services/auth"
)

// Validation limits for registration
const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// UserHandler handles registration, login and user listing endpoints
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid input"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing username/password"))
		return
	}
	// Limits are counted in characters, not bytes, so multibyte usernames
	// are measured the way users see them
	if utf8.RuneCountInString(req.Username) < minUsernameLength || utf8.RuneCountInString(req.Password) < minPasswordLength {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Username/password too short"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponseFromModel(user))
}

// Login handles POST /api/v1/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid input"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Missing username/password"))
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponseFromModel(token, user))
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListUsersResponseFromModel(users))
}
