package model

import "errors"

// Common errors used across the application
var (
	// Not-found errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")

	// Invariant violations, always rejected before any mutation
	ErrInvalidScore = errors.New("score must not be negative")
	ErrInvalidMode  = errors.New("unknown game mode")
)
