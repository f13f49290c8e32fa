package response

import (
	"time"

	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/auth"
	"github.com/pcowley/snake-spectacle/internal/services/scoring"
)

// Player represents a player in API responses
type Player struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	HighScore   int       `json:"high_score"`
	GamesPlayed int       `json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		Username:    p.Username,
		HighScore:   p.HighScore,
		GamesPlayed: p.GamesPlayed,
		CreatedAt:   p.CreatedAt,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// LeaderboardEntry represents one score record on the leaderboard
type LeaderboardEntry struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	Mode       string    `json:"mode"`
	RecordedAt time.Time `json:"recorded_at"`
}

// LeaderboardEntryFromModel converts a model.ScoreRecord
func LeaderboardEntryFromModel(r *model.ScoreRecord) LeaderboardEntry {
	return LeaderboardEntry{
		ID:         string(r.ID),
		Username:   r.Username,
		Score:      r.Score,
		Mode:       string(r.Mode),
		RecordedAt: r.RecordedAt,
	}
}

// LeaderboardFromModel converts an ordered slice of records
func LeaderboardFromModel(records []*model.ScoreRecord) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = LeaderboardEntryFromModel(r)
	}
	return entries
}

// SubmitScoreResponse is the response after submitting a score
type SubmitScoreResponse struct {
	Success bool `json:"success"`
	Rank    int  `json:"rank"`
}

// PlayerStats is a player's cumulative statistics
type PlayerStats struct {
	HighScore   int `json:"high_score"`
	GamesPlayed int `json:"games_played"`
	Rank        int `json:"rank"`
}

// PlayerStatsFromModel converts scoring.PlayerStats
func PlayerStatsFromModel(s *scoring.PlayerStats) PlayerStats {
	return PlayerStats{
		HighScore:   s.HighScore,
		GamesPlayed: s.GamesPlayed,
		Rank:        s.Rank,
	}
}

// LiveGame represents a spectatable game session
type LiveGame struct {
	ID         string        `json:"id"`
	PlayerID   string        `json:"player_id"`
	PlayerName string        `json:"player_name"`
	Score      int           `json:"score"`
	Mode       string        `json:"mode"`
	StartedAt  time.Time     `json:"started_at"`
	Snake      []model.Point `json:"snake"`
	Food       model.Point   `json:"food"`
	Direction  string        `json:"direction"`
}

// LiveGameFromModel converts a model.LiveGameSession
func LiveGameFromModel(s *model.LiveGameSession) LiveGame {
	return LiveGame{
		ID:         string(s.ID),
		PlayerID:   string(s.PlayerID),
		PlayerName: s.PlayerName,
		Score:      s.Score,
		Mode:       string(s.Mode),
		StartedAt:  s.StartedAt,
		Snake:      s.Snake,
		Food:       s.Food,
		Direction:  string(s.Direction),
	}
}

// LiveGamesFromModel converts a slice of sessions
func LiveGamesFromModel(sessions []*model.LiveGameSession) []LiveGame {
	games := make([]LiveGame, len(sessions))
	for i, s := range sessions {
		games[i] = LiveGameFromModel(s)
	}
	return games
}
