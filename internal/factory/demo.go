package factory

import (
	"context"
	"fmt"

	"github.com/pcowley/snake-spectacle/internal/model"
)

// demoUser is a seeded account with a pre-baked leaderboard entry
type demoUser struct {
	username string
	email    string
	score    int
	mode     model.GameMode
	games    int
}

var demoUsers = []demoUser{
	{username: "SnakeMaster", email: "snake@example.com", score: 2450, mode: model.ModeWalls, games: 156},
	{username: "RetroGamer", email: "retro@example.com", score: 1890, mode: model.ModePassThrough, games: 89},
	{username: "PixelKing", email: "pixel@example.com", score: 1650, mode: model.ModeWalls, games: 234},
	{username: "ArcadeQueen", email: "arcade@example.com", score: 1420, mode: model.ModePassThrough, games: 67},
	{username: "NeonNinja", email: "neon@example.com", score: 1280, mode: model.ModeWalls, games: 112},
}

const demoPassword = "test123"

// SeedDemo populates the app with demo accounts, leaderboard entries and a
// couple of live games so a fresh install has something to show. Scores go
// through the scoring engine so ranks and player stats stay consistent.
// Idempotent per username: already-seeded users are skipped.
func (a *App) SeedDemo(ctx context.Context) error {
	byUsername := make(map[string]model.PlayerID, len(demoUsers))

	for _, u := range demoUsers {
		if existing, err := a.PlayerService.GetByUsername(ctx, u.username); err == nil {
			byUsername[u.username] = existing.ID
			continue
		}

		session, err := a.AuthService.Signup(ctx, u.username, u.email, demoPassword)
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
		byUsername[u.username] = session.PlayerID

		if _, err := a.ScoringService.Submit(ctx, session.PlayerID, u.score, u.mode); err != nil {
			return fmt.Errorf("seeding score for %s: %w", u.username, err)
		}

		// Backfill the games-played counter; Submit already counted one game
		player, err := a.PlayerService.Get(ctx, session.PlayerID)
		if err != nil {
			return fmt.Errorf("seeding stats for %s: %w", u.username, err)
		}
		player.GamesPlayed = u.games
		if err := a.PlayerService.Restore(ctx, player); err != nil {
			return fmt.Errorf("seeding stats for %s: %w", u.username, err)
		}
	}

	now := a.Clock.Now()
	a.Spectators.Upsert(&model.LiveGameSession{
		ID:         "1",
		PlayerID:   byUsername["RetroGamer"],
		PlayerName: "RetroGamer",
		Score:      340,
		Mode:       model.ModeWalls,
		StartedAt:  now,
		Snake:      []model.Point{{X: 10, Y: 10}},
		Food:       model.Point{X: 15, Y: 8},
		Direction:  model.DirectionRight,
	})
	a.Spectators.Upsert(&model.LiveGameSession{
		ID:         "2",
		PlayerID:   byUsername["PixelKing"],
		PlayerName: "PixelKing",
		Score:      560,
		Mode:       model.ModePassThrough,
		StartedAt:  now,
		Snake:      []model.Point{{X: 5, Y: 15}},
		Food:       model.Point{X: 12, Y: 5},
		Direction:  model.DirectionDown,
	})

	return nil
}
