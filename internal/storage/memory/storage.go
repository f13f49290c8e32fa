package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pcowley/snake-spectacle/internal/model"
	"github.com/pcowley/snake-spectacle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]model.Player
	usernameIndex map[string]model.PlayerID
	accounts      map[model.PlayerID]model.Account
	emailIndex    map[string]model.PlayerID
	scores        []model.ScoreRecord // insertion order
	seq           int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]model.Player),
		usernameIndex: make(map[string]model.PlayerID),
		accounts:      make(map[model.PlayerID]model.Account),
		emailIndex:    make(map[string]model.PlayerID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player directory operations
//
// Players are stored and returned by value so callers never share mutable
// state with the store.

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = *player
	s.usernameIndex[player.Username] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		p := player
		players = append(players, &p)
	}
	return players, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.PlayerID] = *account
	s.emailIndex[account.Email] = account.PlayerID
	return nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &account, nil
}

// Leaderboard operations

func (s *Storage) AppendScore(ctx context.Context, record *model.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	record.Seq = s.seq
	s.scores = append(s.scores, *record)
	return nil
}

func (s *Storage) ListScores(ctx context.Context, mode *model.GameMode) ([]*model.ScoreRecord, error) {
	s.mu.RLock()
	records := make([]*model.ScoreRecord, 0, len(s.scores))
	for i := range s.scores {
		if mode != nil && s.scores[i].Mode != *mode {
			continue
		}
		r := s.scores[i]
		records = append(records, &r)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Seq < records[j].Seq
	})
	return records, nil
}

func (s *Storage) CountScoresAbove(ctx context.Context, mode model.GameMode, score int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for i := range s.scores {
		if s.scores[i].Mode == mode && s.scores[i].Score > score {
			count++
		}
	}
	return count, nil
}
