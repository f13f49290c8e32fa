package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pcowley/snake-spectacle/internal/api/middleware"
	"github.com/pcowley/snake-spectacle/internal/api/request"
	"github.com/pcowley/snake-spectacle/internal/api/response"
	"github.com/pcowley/snake-spectacle/internal/services/auth"
	"github.com/pcowley/snake-spectacle/internal/services/players"
)

// AuthHandler handles signup, login and session endpoints
type AuthHandler struct {
	authService   *auth.Service
	playerService players.ServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, playerService players.ServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		playerService: playerService,
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session != nil {
		h.authService.InvalidateSession(session.Token)
	}
	response.NoContent(w)
}

// Me handles GET /api/v1/auth/me
// Reads the directory rather than the session copy so stats are current
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sessionPlayer := middleware.MustGetPlayer(r.Context())

	player, err := h.playerService.Get(r.Context(), sessionPlayer.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
