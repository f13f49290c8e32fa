package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pcowley/snake-spectacle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		Username:    "alice",
		HighScore:   100,
		GamesPlayed: 5,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.HighScore, retrieved.HighScore)
	s.Equal(player.GamesPlayed, retrieved.GamesPlayed)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByUsername() {
	player := &model.Player{ID: "player-1", Username: "alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	retrieved, err := s.storage.GetPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)

	_, err = s.storage.GetPlayerByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Username: "alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", Username: "bob"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		PlayerID:     "player-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(account.PlayerID, retrieved.PlayerID)
	s.Equal(account.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetAccountByEmailNotFound() {
	_, err := s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Leaderboard tests

func (s *StorageSuite) TestAppendScoreAssignsSeq() {
	first := &model.ScoreRecord{ID: "score-1", PlayerID: "player-1", Score: 100, Mode: model.ModeWalls}
	second := &model.ScoreRecord{ID: "score-2", PlayerID: "player-1", Score: 200, Mode: model.ModeWalls}

	s.Require().NoError(s.storage.AppendScore(s.ctx, first))
	s.Require().NoError(s.storage.AppendScore(s.ctx, second))

	s.Greater(second.Seq, first.Seq)
}

func (s *StorageSuite) TestListScoresOrdering() {
	records := []*model.ScoreRecord{
		{ID: "score-1", Score: 100, Mode: model.ModeWalls},
		{ID: "score-2", Score: 300, Mode: model.ModeWalls},
		{ID: "score-3", Score: 200, Mode: model.ModeWalls},
	}
	for _, r := range records {
		s.Require().NoError(s.storage.AppendScore(s.ctx, r))
	}

	listed, err := s.storage.ListScores(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal(model.ScoreID("score-2"), listed[0].ID)
	s.Equal(model.ScoreID("score-3"), listed[1].ID)
	s.Equal(model.ScoreID("score-1"), listed[2].ID)
}

func (s *StorageSuite) TestListScoresTieBreakByInsertionOrder() {
	// IDs chosen so lexical member order in the ZSET disagrees with
	// insertion order
	first := &model.ScoreRecord{ID: "score-b", Score: 500, Mode: model.ModeWalls}
	second := &model.ScoreRecord{ID: "score-a", Score: 500, Mode: model.ModeWalls}

	s.Require().NoError(s.storage.AppendScore(s.ctx, first))
	s.Require().NoError(s.storage.AppendScore(s.ctx, second))

	listed, err := s.storage.ListScores(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(model.ScoreID("score-b"), listed[0].ID)
	s.Equal(model.ScoreID("score-a"), listed[1].ID)

	mode := model.ModeWalls
	listed, err = s.storage.ListScores(s.ctx, &mode)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(model.ScoreID("score-b"), listed[0].ID)
}

func (s *StorageSuite) TestListScoresModeFilter() {
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-1", Score: 100, Mode: model.ModeWalls})
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-2", Score: 200, Mode: model.ModePassThrough})

	mode := model.ModePassThrough
	listed, err := s.storage.ListScores(s.ctx, &mode)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(model.ScoreID("score-2"), listed[0].ID)
}

func (s *StorageSuite) TestListScoresEmpty() {
	listed, err := s.storage.ListScores(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(listed)
}

func (s *StorageSuite) TestCountScoresAbove() {
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-1", Score: 100, Mode: model.ModeWalls})
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-2", Score: 200, Mode: model.ModeWalls})
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-3", Score: 200, Mode: model.ModeWalls})
	_ = s.storage.AppendScore(s.ctx, &model.ScoreRecord{ID: "score-4", Score: 300, Mode: model.ModePassThrough})

	count, err := s.storage.CountScoresAbove(s.ctx, model.ModeWalls, 200)
	s.Require().NoError(err)
	s.Equal(0, count)

	count, err = s.storage.CountScoresAbove(s.ctx, model.ModeWalls, 100)
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.storage.CountScoresAbove(s.ctx, model.ModePassThrough, 100)
	s.Require().NoError(err)
	s.Equal(1, count)
}
