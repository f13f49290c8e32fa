package players

import (
	"context"
	"log/slog"
	"sort"

	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/storage"
)

// Service is the player directory: profile lookups, cumulative stat updates
// and ranking over all players' high scores
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new PlayerService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get retrieves a player by identity
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetByUsername retrieves a player by username. Used for uniqueness checks
// at signup.
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.Player, error) {
	return s.storage.GetPlayerByUsername(ctx, username)
}

// ApplyScore increments the player's games-played counter and raises the
// high score if the submitted score beats it. The caller must serialize
// concurrent calls for the same player; the scoring engine holds a per-player
// lock across this read-modify-write.
func (s *Service) ApplyScore(ctx context.Context, id model.PlayerID, score int) (*model.Player, error) {
	if score < 0 {
		return nil, model.ErrInvalidScore
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.GamesPlayed++
	if score > player.HighScore {
		player.HighScore = score
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Restore writes a previously read profile back, undoing an ApplyScore whose
// enclosing submission failed partway
func (s *Service) Restore(ctx context.Context, player *model.Player) error {
	return s.storage.SavePlayer(ctx, player)
}

// Rank returns the 1-based position of the player's high score among all
// players, descending. Ties go to the earlier-created account, with the ID as
// a final tie-break so the order never depends on map iteration.
func (s *Service) Rank(ctx context.Context, id model.PlayerID) (int, error) {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return 0, err
	}

	all, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return 0, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].HighScore != all[j].HighScore {
			return all[i].HighScore > all[j].HighScore
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	for i, p := range all {
		if p.ID == id {
			return i + 1, nil
		}
	}
	return 0, model.ErrPlayerNotFound
}

// Interface for dependency injection
type ServiceInterface interface {
	Get(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetByUsername(ctx context.Context, username string) (*model.Player, error)
	ApplyScore(ctx context.Context, id model.PlayerID, score int) (*model.Player, error)
	Restore(ctx context.Context, player *model.Player) error
	Rank(ctx context.Context, id model.PlayerID) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
