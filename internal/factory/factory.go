package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/pcowley/snake-spectacle/internal/dependencies/clock"
	"github.com/pcowley/snake-spectacle/internal/services/auth"
	"github.com/pcowley/snake-spectacle/internal/services/leaderboard"
	"github.com/pcowley/snake-spectacle/internal/services/players"
	"github.com/pcowley/snake-spectacle/internal/services/scoring"
	"github.com/pcowley/snake-spectacle/internal/services/spectate"
	"github.com/pcowley/snake-spectacle/internal/storage"
	"github.com/pcowley/snake-spectacle/internal/storage/memory"
	redisstorage "github.com/pcowley/snake-spectacle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	PlayerService      *players.Service
	LeaderboardService *leaderboard.Service
	ScoringService     *scoring.Service
	AuthService        *auth.Service
	Spectators         *spectate.Registry
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	playerService := players.New(store, logger)
	leaderboardService := leaderboard.New(store, logger)
	scoringService := scoring.New(playerService, leaderboardService, clk, logger)
	authService := auth.New(store, clk, authCfg, logger)
	spectators := spectate.NewRegistry(logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		PlayerService:      playerService,
		LeaderboardService: leaderboardService,
		ScoringService:     scoringService,
		AuthService:        authService,
		Spectators:         spectators,
	}
}
