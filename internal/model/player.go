package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a participant's profile. HighScore is the best score the player
// has ever submitted across all modes and never decreases; GamesPlayed counts
// every submission. Both are mutated only by the scoring engine.
type Player struct {
	ID          PlayerID
	Username    string // unique, immutable after signup
	HighScore   int
	GamesPlayed int
	CreatedAt   time.Time
}

// Account holds a player's login credentials
// Stored separately from the profile so password hashes never travel with it
type Account struct {
	PlayerID     PlayerID
	Username     string
	Email        string // unique, used for login
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
