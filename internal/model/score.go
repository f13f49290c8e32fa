package model

import "time"

// ScoreID uniquely identifies a leaderboard record
type ScoreID string

// GameMode is the rule-set variant that partitions all leaderboard
// comparisons. Records of different modes never compare.
type GameMode string

const (
	ModeWalls       GameMode = "walls"
	ModePassThrough GameMode = "pass-through"
)

// ParseGameMode validates a mode string against the closed enum
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeWalls, ModePassThrough:
		return GameMode(s), nil
	default:
		return "", ErrInvalidMode
	}
}

// ScoreRecord is one submitted score on the leaderboard. Records are
// append-only and immutable once created.
//
// Username is a point-in-time copy of the submitting player's username so the
// board shows who held the record when it was set; it is never re-joined
// against the live player. Seq is the generation order assigned by storage at
// append time and is the insertion-order tie-break for equal scores.
type ScoreRecord struct {
	ID         ScoreID
	PlayerID   PlayerID
	Username   string
	Score      int
	Mode       GameMode
	Seq        int64
	RecordedAt time.Time
}
