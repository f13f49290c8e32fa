package spectate

import (
	"log/slog"
	"sync"

	"github.com/pcowley/snake-spectacle/internal/model"
)

// Registry holds the live game sessions currently visible to spectators.
// Contents are volatile by design: the write side belongs to an external game
// simulator and everything is gone on process restart.
//
// Reads observe consistent snapshots; sessions are copied on the way in and
// out so no caller ever sees a partially written session.
type Registry struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[model.GameID]*model.LiveGameSession
}

// NewRegistry creates an empty spectator registry
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:   logger,
		sessions: make(map[model.GameID]*model.LiveGameSession),
	}
}

// Upsert stores a snapshot of a session, replacing any previous state for
// its ID
func (r *Registry) Upsert(session *model.LiveGameSession) {
	copied := copySession(session)

	r.mu.Lock()
	_, existed := r.sessions[copied.ID]
	r.sessions[copied.ID] = copied
	r.mu.Unlock()

	if !existed {
		r.logger.Info("live game started",
			slog.String("game_id", string(copied.ID)),
			slog.String("player_id", string(copied.PlayerID)),
			slog.String("mode", string(copied.Mode)),
		)
	}
}

// Remove drops a session, typically when its game ends
func (r *Registry) Remove(id model.GameID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// List returns a snapshot of all current sessions, in no particular order
func (r *Registry) List() []*model.LiveGameSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*model.LiveGameSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, copySession(session))
	}
	return sessions
}

// Get returns the session with the given id
func (r *Registry) Get(id model.GameID) (*model.LiveGameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return copySession(session), nil
}

// copySession deep-copies a session so the snake body is never shared
func copySession(session *model.LiveGameSession) *model.LiveGameSession {
	copied := *session
	copied.Snake = make([]model.Point, len(session.Snake))
	copy(copied.Snake, session.Snake)
	return &copied
}
