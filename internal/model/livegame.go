package model

import "time"

// GameID identifies a live game session
type GameID string

// Direction is a snake's current heading
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Point is a cell on the game grid
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LiveGameSession is an in-progress game visible to spectators. Sessions are
// volatile: they exist only in the spectator registry and are lost when the
// process restarts. Snake holds the body head-first.
type LiveGameSession struct {
	ID         GameID
	PlayerID   PlayerID
	PlayerName string
	Score      int
	Mode       GameMode
	StartedAt  time.Time
	Snake      []Point
	Food       Point
	Direction  Direction
}
