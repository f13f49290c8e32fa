package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pcowley/snake-spectacle/internal/dependencies/mocks"
	"github.com/pcowley/snake-spectacle/internal/storage/memory"
	"github.com/pcowley/snake-spectacle/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Signup tests

func (s *ServiceSuite) TestSignupSucceeds() {
	session, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.Player.Username)
	s.NotEmpty(session.PlayerID)
}

func (s *ServiceSuite) TestSignupPersistsPlayerAndAccount() {
	session, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, session.PlayerID)
	s.Require().NoError(err)
	s.Equal("alice", player.Username)
	s.Equal(0, player.HighScore)
	s.Equal(0, player.GamesPlayed)

	account, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(session.PlayerID, account.PlayerID)
	s.NotEmpty(account.PasswordHash)
	s.NotEqual("password123", account.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestSignupSessionIsValid() {
	session, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.PlayerID, validated.PlayerID)
}

func (s *ServiceSuite) TestSignupFailsIfUsernameExists() {
	_, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "alice", "other@example.com", "different")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestSignupFailsIfEmailExists() {
	_, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "alice2", "alice@example.com", "different")
	s.ErrorIs(err, ErrEmailExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	signup, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)
	s.Equal(signup.PlayerID, session.PlayerID)
	s.NotEqual(signup.Token, session.Token)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice@example.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionFailsWithUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsAfterExpiry() {
	session, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	expired, err := s.service.Signup(s.ctx, "alice", "alice@example.com", "password123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	fresh, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
