package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func testSession(id string, phase models.Phase, now time.Time) *models.GameSession {
	settings := models.DefaultSettings()
	settings.PlayerCount = 3
	settings.PlayerNames = []string{"Ann", "Bob", "Cat"}

	return &models.GameSession{
		ID:       id,
		Settings: settings,
		AssignedRoles: []models.PlayerRole{
			{PlayerName: "Ann", IsImposter: true},
			{PlayerName: "Bob", HasSeenCard: true},
			{PlayerName: "Cat"},
		},
		CurrentWordPair:    &models.WordPair{Word: "apple", ImposterHint: "fruit"},
		GameWordPair:       &models.WordPair{Word: "apple", ImposterHint: "fruit"},
		CurrentRoundNumber: 1,
		AllClues:           []models.PlayerClue{{PlayerName: "Bob", Clue: "red", RoundNumber: 1}},
		CurrentRound: &models.GameRound{
			PlayerOrder:        []string{"Bob", "Cat", "Ann"},
			CurrentPlayerIndex: 1,
			Clues:              []models.PlayerClue{{PlayerName: "Bob", Clue: "red", RoundNumber: 1}},
		},
		Phase:         phase,
		PhaseDeadline: now.Add(3 * time.Second),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&Config{})
	s.ErrorIs(err, ErrNilRedisClient)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := testSession("test-session-id", models.PhaseClueCollection, s.testNow)

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(session, got)

	s.True(s.mr.Exists("session:test-session-id"))
	s.Equal(time.Hour, s.mr.TTL("session:test-session-id"))
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_InvalidInput() {
	s.ErrorIs(s.repo.SaveSession(context.Background(), nil), ErrInvalidInput)
	s.ErrorIs(s.repo.SaveSession(context.Background(), &SaveSessionInput{}), ErrInvalidInput)
	s.ErrorIs(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: &models.GameSession{}}), ErrInvalidInput)
}

func (s *RedisRepositoryTestSuite) TestSessionExpires() {
	session := testSession("test-session-id", models.PhaseSetup, s.testNow)
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	s.mr.FastForward(2 * time.Hour)

	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.ErrorIs(err, ErrSessionNotFound)

	active, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(active.SessionIDs)

	members, err := s.client.SMembers(context.Background(), activeSessionsKey).Result()
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *RedisRepositoryTestSuite) TestActiveSessionsFollowPhase() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveSession(ctx, &SaveSessionInput{Session: testSession("a", models.PhaseVoting, s.testNow)}))
	s.Require().NoError(s.repo.SaveSession(ctx, &SaveSessionInput{Session: testSession("b", models.PhaseCardReveal, s.testNow)}))

	active, err := s.repo.GetActiveSessions(ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, active.SessionIDs)

	s.Require().NoError(s.repo.SaveSession(ctx, &SaveSessionInput{Session: testSession("a", models.PhaseFinalResults, s.testNow)}))

	active, err = s.repo.GetActiveSessions(ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"b"}, active.SessionIDs)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveSession(ctx, &SaveSessionInput{Session: testSession("test-session-id", models.PhaseVoting, s.testNow)}))

	s.Require().NoError(s.repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "test-session-id"}))

	_, err := s.repo.GetSession(ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.ErrorIs(err, ErrSessionNotFound)

	active, err := s.repo.GetActiveSessions(ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(active.SessionIDs)

	err = s.repo.DeleteSession(ctx, &DeleteSessionInput{SessionID: "test-session-id"})
	s.ErrorIs(err, ErrSessionNotFound)
}
