package storage

import (
	"context"

	"github.com/pcowley/snake-spectacle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player directory operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// Leaderboard operations. AppendScore assigns record.Seq, a strictly
	// increasing generation order. ListScores returns records ordered by
	// score descending, ties by Seq ascending; a nil mode returns all modes.
	AppendScore(ctx context.Context, record *model.ScoreRecord) error
	ListScores(ctx context.Context, mode *model.GameMode) ([]*model.ScoreRecord, error)
	CountScoresAbove(ctx context.Context, mode model.GameMode, score int) (int, error)
}
