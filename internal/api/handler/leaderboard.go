package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pcowley/snake-spectacle/internal/api/middleware"
	"github.com/pcowley/snake-spectacle/internal/api/request"
	"github.com/pcowley/snake-spectacle/internal/api/response"
	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/leaderboard"
	"github.com/pcowley/snake-spectacle/internal/services/scoring"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService leaderboard.ServiceInterface
	scoringService     scoring.ServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService leaderboard.ServiceInterface, scoringService scoring.ServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		scoringService:     scoringService,
	}
}

// Get handles GET /api/v1/leaderboard?mode=walls
// Without a mode filter, records of every mode are returned
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var mode *model.GameMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := model.ParseGameMode(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		mode = &parsed
	}

	records, err := h.leaderboardService.List(r.Context(), mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(records))
}

// Submit handles POST /api/v1/leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	mode, err := model.ParseGameMode(req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.scoringService.Submit(r.Context(), player.ID, req.Score, mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitScoreResponse{
		Success: true,
		Rank:    result.Rank,
	})
}
