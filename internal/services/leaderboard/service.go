package leaderboard

import (
	"context"
	"log/slog"

	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/storage"
)

// Service is the leaderboard store: an append-only, mode-partitioned
// collection of score records
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new LeaderboardService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Append inserts a new score record. Storage assigns record.Seq, the
// strictly increasing generation order used as the insertion-order tie-break.
// Player-reference validity is the scoring engine's responsibility; a
// well-formed record is never rejected here.
func (s *Service) Append(ctx context.Context, record *model.ScoreRecord) error {
	if record.Score < 0 {
		return model.ErrInvalidScore
	}
	if _, err := model.ParseGameMode(string(record.Mode)); err != nil {
		return err
	}
	return s.storage.AppendScore(ctx, record)
}

// List returns records for one mode, or all modes when mode is nil, ordered
// by score descending with ties broken by insertion order ascending (the
// earlier submission ranks higher at equal score).
//
// Note this positional order is a display order. The rank reported for a
// submission is the tie-inclusive CountStrictlyHigher+1, under which equal
// scores in a mode share a rank; the two definitions diverge only on ties.
func (s *Service) List(ctx context.Context, mode *model.GameMode) ([]*model.ScoreRecord, error) {
	return s.storage.ListScores(ctx, mode)
}

// CountStrictlyHigher returns the number of records in the mode whose score
// is strictly greater than the given score
func (s *Service) CountStrictlyHigher(ctx context.Context, mode model.GameMode, score int) (int, error) {
	return s.storage.CountScoresAbove(ctx, mode, score)
}

// Interface for dependency injection
type ServiceInterface interface {
	Append(ctx context.Context, record *model.ScoreRecord) error
	List(ctx context.Context, mode *model.GameMode) ([]*model.ScoreRecord, error)
	CountStrictlyHigher(ctx context.Context, mode model.GameMode, score int) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
