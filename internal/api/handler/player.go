package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pcowley/snake-spectacle/internal/api/response"
	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/scoring"
)

// PlayerHandler handles player stats endpoints
type PlayerHandler struct {
	scoringService scoring.ServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(scoringService scoring.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		scoringService: scoringService,
	}
}

// Stats handles GET /api/v1/players/{id}/stats
func (h *PlayerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	stats, err := h.scoringService.GetPlayerStats(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(stats))
}
