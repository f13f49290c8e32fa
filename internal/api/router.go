package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pcowley/snake-spectacle/internal/api/handler"
	"github.com/pcowley/snake-spectacle/internal/api/middleware"
	"github.com/pcowley/snake-spectacle/internal/services/auth"
	"github.com/pcowley/snake-spectacle/internal/services/leaderboard"
	"github.com/pcowley/snake-spectacle/internal/services/players"
	"github.com/pcowley/snake-spectacle/internal/services/scoring"
	"github.com/pcowley/snake-spectacle/internal/services/spectate"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	PlayerService      *players.Service
	LeaderboardService *leaderboard.Service
	ScoringService     *scoring.Service
	Spectators         *spectate.Registry
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.PlayerService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService, cfg.ScoringService)
	playerHandler := handler.NewPlayerHandler(cfg.ScoringService)
	gamesHandler := handler.NewGamesHandler(cfg.Spectators)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for signup/login)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Leaderboard: reads are public, submissions require auth
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)
	submit := api.PathPrefix("/leaderboard").Subrouter()
	submit.Use(authMiddleware)
	submit.HandleFunc("", leaderboardHandler.Submit).Methods(http.MethodPost)

	// Player stats (public, spectators can look anyone up)
	api.HandleFunc("/players/{id}/stats", playerHandler.Stats).Methods(http.MethodGet)

	// Live game spectating (public)
	api.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gamesHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
