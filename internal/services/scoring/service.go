package scoring

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rs/xid"

	"github.com/pcowley/snake-spectacle/internal/dependencies/clock"
	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/services/leaderboard"
	"github.com/pcowley/snake-spectacle/internal/services/players"
)

// Service is the scoring engine. A submission updates the owning player's
// cumulative stats, appends a leaderboard record and computes that record's
// rank within its mode, as one logical unit per player.
type Service struct {
	players     players.ServiceInterface
	leaderboard leaderboard.ServiceInterface
	clock       clock.Clock
	logger      *slog.Logger

	// locks serializes the read-modify-write for a single player so two
	// concurrent submissions never lose an update. One mutex per player
	// identity; different players proceed in parallel.
	mu    sync.Mutex
	locks map[model.PlayerID]*sync.Mutex
}

// New creates a new ScoringService
func New(
	players players.ServiceInterface,
	leaderboard leaderboard.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		players:     players,
		leaderboard: leaderboard,
		clock:       clock,
		logger:      logger,
		locks:       make(map[model.PlayerID]*sync.Mutex),
	}
}

// SubmitResult is the outcome of a score submission
type SubmitResult struct {
	Record *model.ScoreRecord
	// Rank is 1-based and tie-inclusive within the record's mode:
	// CountStrictlyHigher + 1, so equal scores share a rank
	Rank int
}

// PlayerStats is the read model of a player's cumulative statistics
type PlayerStats struct {
	HighScore   int
	GamesPlayed int
	Rank        int
}

// Submit records a score for a player and returns the new record's rank
// within its mode. The submission is rejected before any mutation if the
// score is negative, the mode is unknown, or the player does not exist. A
// storage failure after the stats update rolls the profile back so no
// partial state survives.
func (s *Service) Submit(ctx context.Context, playerID model.PlayerID, score int, mode model.GameMode) (*SubmitResult, error) {
	if score < 0 {
		return nil, model.ErrInvalidScore
	}
	if _, err := model.ParseGameMode(string(mode)); err != nil {
		return nil, err
	}

	lock := s.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	// Snapshot for rollback if the append fails after stats are written
	before := *player

	updated, err := s.players.ApplyScore(ctx, playerID, score)
	if err != nil {
		return nil, err
	}

	record := &model.ScoreRecord{
		ID:         model.ScoreID(xid.New().String()),
		PlayerID:   updated.ID,
		Username:   updated.Username,
		Score:      score,
		Mode:       mode,
		RecordedAt: s.clock.Now(),
	}

	if err := s.leaderboard.Append(ctx, record); err != nil {
		if rbErr := s.players.Restore(ctx, &before); rbErr != nil {
			s.logger.Error("failed to roll back player stats",
				slog.String("player_id", string(playerID)),
				slog.String("error", rbErr.Error()),
			)
		}
		return nil, err
	}

	// Rank against the store state after the append: the new record counts
	// toward the total but never toward "strictly higher than itself"
	higher, err := s.leaderboard.CountStrictlyHigher(ctx, mode, score)
	if err != nil {
		return nil, err
	}
	rank := higher + 1

	s.logger.Info("score submitted",
		slog.String("score_id", string(record.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("mode", string(mode)),
		slog.Int("score", score),
		slog.Int("rank", rank),
	)

	return &SubmitResult{Record: record, Rank: rank}, nil
}

// GetPlayerStats returns a player's cumulative stats and current standing
// among all players' high scores
func (s *Service) GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*PlayerStats, error) {
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rank, err := s.players.Rank(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return &PlayerStats{
		HighScore:   player.HighScore,
		GamesPlayed: player.GamesPlayed,
		Rank:        rank,
	}, nil
}

// playerLock returns the mutex for a player, creating it on first use.
// The map only ever grows, bounded by the number of distinct players seen.
func (s *Service) playerLock(id model.PlayerID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// Interface for dependency injection
type ServiceInterface interface {
	Submit(ctx context.Context, playerID model.PlayerID, score int, mode model.GameMode) (*SubmitResult, error)
	GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*PlayerStats, error)
}

var _ ServiceInterface = (*Service)(nil)
