package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcowley/snake-spectacle/internal/api"
	"github.com/pcowley/snake-spectacle/internal/api/response"
	"github.com/pcowley/snake-spectacle/internal/factory"
	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/auth"
	"github.com/pcowley/snake-spectacle/internal/services/spectate"
	"github.com/pcowley/snake-spectacle/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler    http.Handler
	storage    *memory.Storage
	auth       *auth.Service
	spectators *spectate.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		PlayerService:      app.PlayerService,
		LeaderboardService: app.LeaderboardService,
		ScoringService:     app.ScoringService,
		Spectators:         app.Spectators,
	})

	return &testServer{
		handler:    router,
		storage:    app.Storage.(*memory.Storage),
		auth:       app.AuthService,
		spectators: app.Spectators,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func signup(t *testing.T, ts *testServer, username, email string) response.AuthResponse {
	t.Helper()

	body := map[string]string{
		"username": username,
		"email":    email,
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func submitScore(t *testing.T, ts *testServer, token string, score int, mode string) response.SubmitScoreResponse {
	t.Helper()

	body := map[string]any{"score": score, "mode": mode}
	rr := ts.request(http.MethodPost, "/api/v1/leaderboard", body, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.SubmitScoreResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestSignupAndLogin(t *testing.T) {
	ts := newTestServer(t)

	signupResp := signup(t, ts, "alice", "alice@example.com")
	assert.Equal(t, "alice", signupResp.Player.Username)
	assert.NotEmpty(t, signupResp.SessionToken)

	loginBody := map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, signupResp.Player.ID, loginResp.Player.ID)
}

func TestSignupDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts, "alice", "alice@example.com")

	body := map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/signup", body, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "USERNAME_EXISTS")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	signup(t, ts, "alice", "alice@example.com")

	body := map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)

	authResp := signup(t, ts, "bob", "bob@example.com")

	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil, authResp.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &meResp))
	assert.Equal(t, "bob", meResp.Username)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := newTestServer(t)

	authResp := signup(t, ts, "bob", "bob@example.com")

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil, authResp.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, authResp.SessionToken)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/leaderboard", map[string]any{"score": 10, "mode": "walls"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSubmitScoreAndLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	alice := signup(t, ts, "alice", "alice@example.com")
	bob := signup(t, ts, "bob", "bob@example.com")

	first := submitScore(t, ts, alice.SessionToken, 1500, "walls")
	assert.True(t, first.Success)
	assert.Equal(t, 1, first.Rank)

	second := submitScore(t, ts, bob.SessionToken, 800, "walls")
	assert.Equal(t, 2, second.Rank)

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard?mode=walls", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 1500, entries[0].Score)
	assert.Equal(t, "bob", entries[1].Username)
}

func TestLeaderboardModeFilter(t *testing.T) {
	ts := newTestServer(t)

	alice := signup(t, ts, "alice", "alice@example.com")
	submitScore(t, ts, alice.SessionToken, 100, "walls")
	submitScore(t, ts, alice.SessionToken, 200, "pass-through")

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard?mode=pass-through", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []response.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "pass-through", entries[0].Mode)
}

func TestLeaderboardRejectsUnknownMode(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/leaderboard?mode=maze", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_MODE")
}

func TestSubmitNegativeScoreRejected(t *testing.T) {
	ts := newTestServer(t)

	alice := signup(t, ts, "alice", "alice@example.com")

	body := map[string]any{"score": -5, "mode": "walls"}
	rr := ts.request(http.MethodPost, "/api/v1/leaderboard", body, alice.SessionToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_SCORE")
}

func TestPlayerStats(t *testing.T) {
	ts := newTestServer(t)

	alice := signup(t, ts, "alice", "alice@example.com")
	bob := signup(t, ts, "bob", "bob@example.com")

	submitScore(t, ts, alice.SessionToken, 500, "walls")
	submitScore(t, ts, bob.SessionToken, 900, "walls")

	// Stats are public
	rr := ts.request(http.MethodGet, "/api/v1/players/"+alice.Player.ID+"/stats", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var stats response.PlayerStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 500, stats.HighScore)
	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 2, stats.Rank)
}

func TestPlayerStatsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/nonexistent/stats", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_NOT_FOUND")
}

func TestLiveGames(t *testing.T) {
	ts := newTestServer(t)

	ts.spectators.Upsert(&model.LiveGameSession{
		ID:         "game-1",
		PlayerID:   "player-1",
		PlayerName: "alice",
		Score:      340,
		Mode:       model.ModeWalls,
		Snake:      []model.Point{{X: 10, Y: 10}},
		Food:       model.Point{X: 15, Y: 8},
		Direction:  model.DirectionRight,
	})

	rr := ts.request(http.MethodGet, "/api/v1/games", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var games []response.LiveGame
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "alice", games[0].PlayerName)

	rr = ts.request(http.MethodGet, "/api/v1/games/game-1", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var game response.LiveGame
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, 340, game.Score)
	assert.Equal(t, "RIGHT", game.Direction)
}

func TestLiveGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/nonexistent", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestInvalidJSONBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}
