package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pcowley/snake-spectacle/internal/api/response"
	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/spectate"
)

// GamesHandler handles live game spectating endpoints
type GamesHandler struct {
	registry *spectate.Registry
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(registry *spectate.Registry) *GamesHandler {
	return &GamesHandler{
		registry: registry,
	}
}

// List handles GET /api/v1/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions := h.registry.List()
	response.JSON(w, http.StatusOK, response.LiveGamesFromModel(sessions))
}

// Get handles GET /api/v1/games/{id}
func (h *GamesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	session, err := h.registry.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LiveGameFromModel(session))
}
