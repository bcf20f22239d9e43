package engine

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/imposter/internal/common/clock/mocks"
	"github.com/KirkDiggler/imposter/internal/models"
	randomMocks "github.com/KirkDiggler/imposter/internal/random/mocks"
	wordMocks "github.com/KirkDiggler/imposter/internal/words/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClock  *clockMocks.MockClock
	mockRandom *randomMocks.MockSource
	mockWords  *wordMocks.MockProvider

	now       time.Time
	perm      []int
	wordsSeen int
}

func (s *SessionTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.mockWords = wordMocks.NewMockProvider(s.mockCtrl)

	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.perm = nil
	s.wordsSeen = 0

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	// Perm returns s.perm when set, identity otherwise; Shuffle keeps the order
	s.mockRandom.EXPECT().Perm(gomock.Any()).DoAndReturn(func(n int) []int {
		if len(s.perm) == n {
			return append([]int(nil), s.perm...)
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}).AnyTimes()
	s.mockRandom.EXPECT().Shuffle(gomock.Any(), gomock.Any()).AnyTimes()

	s.mockWords.EXPECT().PickWord(gomock.Any()).DoAndReturn(func(models.Difficulty) models.WordPair {
		s.wordsSeen++
		return models.WordPair{
			Word:         fmt.Sprintf("word%d", s.wordsSeen),
			ImposterHint: fmt.Sprintf("hint%d", s.wordsSeen),
		}
	}).AnyTimes()
}

func (s *SessionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SessionTestSuite) config() *Config {
	return &Config{
		ID:     "test-session",
		Words:  s.mockWords,
		Random: s.mockRandom,
		Clock:  s.mockClock,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// newGame configures names, impostors and rounds and deals the cards
func (s *SessionTestSuite) newGame(names []string, imposters, maxRounds int) *Session {
	sess, err := New(s.config())
	s.Require().NoError(err)

	sess.SetOfflinePlayerCount(len(names))
	for i, name := range names {
		sess.SetOfflinePlayerName(i, name)
	}
	sess.SetOfflineImposterCount(imposters)
	sess.SetMaxRounds(maxRounds)
	sess.StartOfflineGame()
	s.Require().Equal(models.PhaseCardReveal, sess.Phase())
	return sess
}

// playRound starts clue collection if needed and gives every player a clue
func (s *SessionTestSuite) playRound(sess *Session) {
	if sess.Phase() == models.PhaseRoundStarting {
		s.advance(sess.State().Settings.StartDelay)
		sess.Tick()
	}
	s.Require().Equal(models.PhaseClueCollection, sess.Phase())

	for sess.Phase() == models.PhaseClueCollection {
		sess.SubmitPlayerClue("clue from " + sess.CurrentPlayer())
		sess.NextPlayer()
	}
}

// voteAll has every voter pick the target chosen for them
func (s *SessionTestSuite) voteAll(sess *Session, pick func(voter string) string) {
	s.Require().Equal(models.PhaseVoting, sess.Phase())
	for sess.Phase() == models.PhaseVoting {
		sess.SubmitVote(pick(sess.CurrentVoter()))
		sess.NextVoter()
	}
}

func (s *SessionTestSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *SessionTestSuite) TestNew_MissingDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	cfg := s.config()
	cfg.Words = nil
	_, err = New(cfg)
	s.ErrorIs(err, ErrNilWordProvider)

	cfg = s.config()
	cfg.Random = nil
	_, err = New(cfg)
	s.ErrorIs(err, ErrNilRandom)

	cfg = s.config()
	cfg.Clock = nil
	_, err = New(cfg)
	s.ErrorIs(err, ErrNilClock)
}

func (s *SessionTestSuite) TestNew_StartsInSetup() {
	sess, err := New(s.config())
	s.Require().NoError(err)

	state := sess.State()
	s.Equal(models.PhaseSetup, state.Phase)
	s.Equal("test-session", state.ID)
	s.Equal(models.DefaultSettings(), state.Settings)
	s.Equal(s.now, state.CreatedAt)
}

func (s *SessionTestSuite) TestRestore() {
	_, err := Restore(s.config(), nil)
	s.ErrorIs(err, ErrNilState)

	_, err = Restore(s.config(), &models.GameSession{Phase: "bogus"})
	s.ErrorIs(err, ErrInvalidPhase)

	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	snapshot := sess.State()

	restored, err := Restore(s.config(), snapshot)
	s.Require().NoError(err)
	s.Equal(snapshot, restored.State())

	snapshot.AssignedRoles[0].PlayerName = "Mallory"
	s.Equal("Ann", restored.State().AssignedRoles[0].PlayerName)
}

func (s *SessionTestSuite) TestSetOfflinePlayerCount_KeepsTypedNames() {
	sess, err := New(s.config())
	s.Require().NoError(err)

	sess.SetOfflinePlayerName(0, "Ann")
	sess.SetOfflinePlayerName(1, "Bob")
	sess.SetOfflinePlayerCount(6)

	settings := sess.State().Settings
	s.Equal(6, settings.PlayerCount)
	s.Equal([]string{"Ann", "Bob", "", "", "", ""}, settings.PlayerNames)

	sess.SetOfflinePlayerCount(1)
	s.Equal([]string{"Ann"}, sess.State().Settings.PlayerNames)

	sess.SetOfflinePlayerName(3, "Dan")
	s.Equal([]string{"Ann"}, sess.State().Settings.PlayerNames)
}

func (s *SessionTestSuite) TestSettersIgnoredOutsideSetup() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	before := sess.State()

	sess.SetOfflinePlayerCount(5)
	sess.SetOfflineImposterCount(2)
	sess.SetOfflinePlayerName(0, "Zed")
	sess.SetMaxRounds(9)
	sess.SetWordDifficulty(models.DifficultyHard)
	sess.SetGameMode(models.GameModeOnline)

	s.Equal(before.Settings, sess.State().Settings)
}

func (s *SessionTestSuite) TestStartOfflineGame_DealsCards() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat", "Dan"}, 1, 3)
	state := sess.State()

	s.Len(state.AssignedRoles, 4)
	s.Equal([]string{"Ann"}, state.Imposters())
	s.Equal(&models.WordPair{Word: "word1", ImposterHint: "hint1"}, state.CurrentWordPair)
	s.Nil(state.GameWordPair)
	s.Equal(0, state.CurrentRoundNumber)

	card, ok := sess.CardFor("Ann")
	s.Require().True(ok)
	s.True(card.IsImposter)
	s.Equal("hint1", card.Text)

	card, ok = sess.CardFor("Bob")
	s.Require().True(ok)
	s.False(card.IsImposter)
	s.Equal("word1", card.Text)

	_, ok = sess.CardFor("Nobody")
	s.False(ok)
}

func (s *SessionTestSuite) TestMarkCardSeen() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	s.False(sess.AllCardsSeen())

	sess.MarkCardSeen("Ann")
	sess.MarkCardSeen("Bob")
	sess.MarkCardSeen("Nobody")
	s.False(sess.AllCardsSeen())

	sess.MarkCardSeen("Cat")
	s.True(sess.AllCardsSeen())
}

func (s *SessionTestSuite) TestGenerateNewWordPair() {
	s.perm = []int{2, 0, 1}
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	s.Equal([]string{"Cat"}, sess.State().Imposters())

	s.perm = []int{1, 0, 2}
	sess.GenerateNewWordPair()

	state := sess.State()
	s.Equal("word2", state.CurrentWordPair.Word)
	s.Equal([]string{"Bob"}, state.Imposters())
	s.Equal(models.PhaseCardReveal, state.Phase)

	sess.StartGameRounds()
	sess.GenerateNewWordPair()
	s.Equal("word2", sess.State().GameWordPair.Word)
	s.Equal(2, s.wordsSeen)
}

func (s *SessionTestSuite) TestStartGameRounds_WaitsForStartDelay() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()

	state := sess.State()
	s.Equal(models.PhaseRoundStarting, state.Phase)
	s.Equal(1, state.CurrentRoundNumber)
	s.Equal(state.CurrentWordPair, state.GameWordPair)
	s.Equal([]string{"Ann", "Bob", "Cat"}, state.CurrentRound.PlayerOrder)

	sess.SubmitPlayerClue("too early")
	s.Empty(sess.State().AllClues)

	s.advance(time.Second)
	sess.Tick()
	s.Equal(models.PhaseRoundStarting, sess.Phase())

	s.advance(models.DefaultStartDelay)
	sess.Tick()
	s.Equal(models.PhaseClueCollection, sess.Phase())
	s.Equal("Ann", sess.CurrentPlayer())
}

func (s *SessionTestSuite) TestStartGameRounds_OnlyFromCardReveal() {
	sess, err := New(s.config())
	s.Require().NoError(err)

	sess.StartGameRounds()
	s.Equal(models.PhaseSetup, sess.Phase())
	s.Nil(sess.State().CurrentRound)
}

func (s *SessionTestSuite) TestSubmitPlayerClue() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()
	s.advance(models.DefaultStartDelay)
	sess.Tick()

	sess.SubmitPlayerClue("   ")
	s.Empty(sess.State().AllClues)

	sess.SubmitPlayerClue("  fruit ")
	sess.SubmitPlayerClue("second try")

	state := sess.State()
	s.Equal([]models.PlayerClue{{PlayerName: "Ann", Clue: "fruit", RoundNumber: 1}}, state.AllClues)
	s.Equal(state.AllClues, state.CurrentRound.Clues)

	sess.NextPlayer()
	s.Equal("Bob", sess.CurrentPlayer())
	sess.SubmitPlayerClue("red")
	s.Len(sess.State().AllClues, 2)
}

func (s *SessionTestSuite) TestNextPlayer_WithoutClueStillAdvances() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()
	s.advance(models.DefaultStartDelay)
	sess.Tick()

	sess.NextPlayer()
	s.Equal("Bob", sess.CurrentPlayer())
	s.Empty(sess.State().AllClues)
}

func (s *SessionTestSuite) TestRoundLoop_ContinueThenForcedVote() {
	names := []string{"Ann", "Bob", "Cat", "Dan"}
	sess := s.newGame(names, 1, 2)
	sess.StartGameRounds()
	s.playRound(sess)

	s.Equal(models.PhaseRoundDecision, sess.Phase())
	s.Len(sess.State().AllClues, 4)

	s.perm = []int{3, 0, 1, 2}
	sess.ContinueToNextRound()

	state := sess.State()
	s.Equal(models.PhaseRoundStarting, state.Phase)
	s.Equal(2, state.CurrentRoundNumber)
	s.Equal("word2", state.GameWordPair.Word)
	s.Equal(state.CurrentWordPair, state.GameWordPair)
	s.Equal([]string{"Dan"}, state.Imposters())
	s.Equal(names, state.CurrentRound.PlayerOrder)
	s.Empty(state.CurrentRound.Clues)
	s.Len(state.AllClues, 4)

	s.playRound(sess)

	state = sess.State()
	s.Equal(models.PhaseVoting, state.Phase)
	s.Len(state.AllClues, 8)
	s.Equal(2, state.AllClues[len(state.AllClues)-1].RoundNumber)
	s.Require().NotNil(state.VotingState)
	s.Equal(names, state.VotingState.PlayerOrder)
	s.Equal("Ann", sess.CurrentVoter())
}

func (s *SessionTestSuite) TestEndGameAndVote() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 3)

	sess.EndGameAndVote()
	s.Equal(models.PhaseCardReveal, sess.Phase())

	sess.StartGameRounds()
	s.playRound(sess)
	s.Require().Equal(models.PhaseRoundDecision, sess.Phase())

	sess.EndGameAndVote()
	s.Equal(models.PhaseVoting, sess.Phase())
	s.NotNil(sess.State().VotingState)

	sess.ContinueToNextRound()
	s.Equal(models.PhaseVoting, sess.Phase())
	s.Equal(1, sess.RoundNumber())
}

func (s *SessionTestSuite) TestStartVoting_Idempotent() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	sess.StartGameRounds()
	s.playRound(sess)

	sess.SubmitVote("Bob")
	sess.StartVoting()

	s.Len(sess.State().VotingState.Votes, 1)
}

func (s *SessionTestSuite) TestVoting_InnocentEliminated() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	sess.StartGameRounds()
	s.playRound(sess)

	sess.SubmitVote("")
	sess.SubmitVote("Bob")
	sess.SubmitVote("Cat")
	s.Equal([]models.Vote{{VoterName: "Ann", TargetName: "Bob"}}, sess.State().VotingState.Votes)

	sess.NextVoter()
	sess.SubmitVote("Bob")
	sess.NextVoter()
	sess.SubmitVote("Ann")
	sess.NextVoter()

	state := sess.State()
	s.Equal(models.PhaseVotingResults, state.Phase)
	s.Require().NotNil(state.VotingOutcome)
	s.Equal("Bob", state.VotingOutcome.EliminatedPlayer)
	s.False(state.VotingOutcome.IsImposterEliminated)
	s.True(state.PhaseDeadline.IsZero())

	s.advance(time.Minute)
	sess.Tick()
	s.Equal(models.PhaseVotingResults, sess.Phase())
	s.Equal(models.WinnerNone, sess.Winner())

	sess.ShowFinalResults()
	s.Equal(models.PhaseFinalResults, sess.Phase())
	s.Equal(models.WinnerImposters, sess.Winner())
}

func (s *SessionTestSuite) TestGuessWord_Gating() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat", "Dan"}, 2, 2)

	sess.GuessWord("Ann", "word1")
	s.False(sess.State().WordGuessAttempted)

	sess.StartGameRounds()
	s.True(sess.CanImposterGuessWord("Ann"))
	s.True(sess.CanImposterGuessWord("Bob"))
	s.False(sess.CanImposterGuessWord("Cat"))

	sess.GuessWord("Cat", "word1")
	s.False(sess.State().WordGuessAttempted)

	sess.GuessWord("Ann", "   ")
	s.False(sess.State().WordGuessAttempted)

	sess.GuessWord("Ann", "banana")
	state := sess.State()
	s.True(state.WordGuessAttempted)
	s.True(state.WordGuessingDisabled)
	s.Require().NotNil(state.WordGuessResult)
	s.False(state.WordGuessResult.IsWin)
	s.Equal("word1", state.WordGuessResult.TargetWord)
	s.Equal(models.PhaseRoundStarting, state.Phase)

	s.False(sess.CanImposterGuessWord("Bob"))
	sess.GuessWord("Bob", "word1")
	s.Equal("Ann", sess.State().WordGuessResult.GuessedBy)
}

func (s *SessionTestSuite) TestGuessWord_CorrectGuessWins() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()
	s.advance(models.DefaultStartDelay)
	sess.Tick()

	sess.GuessWord("Ann", "  WORD1 ")

	state := sess.State()
	s.Equal(models.PhaseFinalResults, state.Phase)
	s.True(state.WordGuessResult.IsWin)
	s.False(state.WordGuessResult.IsLastChance)
	s.False(state.WordGuessingDisabled)
	s.Equal(models.WinnerImposters, sess.Winner())
}

func (s *SessionTestSuite) TestGuessWord_NearMissLoses() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()

	sess.GuessWord("Ann", "word12")

	state := sess.State()
	s.True(state.WordGuessAttempted)
	s.True(state.WordGuessingDisabled)
	s.False(state.WordGuessResult.IsWin)
	s.Equal("word12", state.WordGuessResult.GuessedWord)
	s.Equal("word1", state.WordGuessResult.TargetWord)
	s.Equal(models.PhaseRoundStarting, state.Phase)
}

func (s *SessionTestSuite) TestGuessWord_ResetByNextRound() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 2)
	sess.StartGameRounds()
	sess.GuessWord("Ann", "nope")
	s.False(sess.CanImposterGuessWord("Ann"))

	s.playRound(sess)
	sess.ContinueToNextRound()

	state := sess.State()
	s.False(state.WordGuessAttempted)
	s.False(state.WordGuessingDisabled)
	s.Nil(state.WordGuessResult)
	s.True(sess.CanImposterGuessWord("Ann"))
}

func (s *SessionTestSuite) TestLastChance_WrongGuessThenTimeout() {
	names := []string{"Ann", "Bob", "Cat", "Dan", "Eve"}
	s.perm = []int{1, 3, 0, 2, 4}
	sess := s.newGame(names, 2, 1)
	s.Require().Equal([]string{"Bob", "Dan"}, sess.State().Imposters())

	sess.StartGameRounds()
	s.playRound(sess)
	s.voteAll(sess, func(string) string { return "Dan" })

	state := sess.State()
	s.Equal(models.PhaseVotingResults, state.Phase)
	s.True(state.VotingOutcome.IsImposterEliminated)
	s.Equal(s.now.Add(models.DefaultResultsDelay), state.PhaseDeadline)

	sess.ShowFinalResults()
	s.Equal(models.PhaseVotingResults, sess.Phase())

	s.advance(models.DefaultResultsDelay)
	sess.Tick()
	s.Equal(models.PhaseLastChance, sess.Phase())
	s.Equal([]string{"Bob", "Dan"}, sess.State().LastChance.Candidates)
	s.Equal("Bob", sess.LastChancePlayer())
	s.Equal(models.DefaultLastChanceWindow, sess.LastChanceRemaining())

	sess.GuessWordInLastChance("Dan", "word1")
	s.Equal("Bob", sess.LastChancePlayer())
	s.False(sess.State().WordGuessAttempted)

	s.advance(10 * time.Second)
	sess.GuessWordInLastChance("Bob", "banana")

	state = sess.State()
	s.Equal(models.PhaseLastChance, state.Phase)
	s.Equal("Dan", sess.LastChancePlayer())
	s.True(state.WordGuessAttempted)
	s.True(state.WordGuessResult.IsLastChance)
	s.Equal(models.DefaultLastChanceWindow, sess.LastChanceRemaining())

	s.advance(models.DefaultLastChanceWindow)
	sess.Tick()

	s.Equal(models.PhaseFinalResults, sess.Phase())
	s.Equal(models.WinnerPlayers, sess.Winner())
}

func (s *SessionTestSuite) TestLastChance_CorrectGuessWins() {
	s.perm = []int{1, 0, 2}
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	sess.StartGameRounds()
	s.playRound(sess)
	s.voteAll(sess, func(string) string { return "Bob" })

	s.advance(models.DefaultResultsDelay)
	sess.Tick()
	s.Require().Equal("Bob", sess.LastChancePlayer())

	sess.GuessWordInLastChance("Bob", "Word1")

	state := sess.State()
	s.Equal(models.PhaseFinalResults, state.Phase)
	s.True(state.WordGuessResult.IsWin)
	s.True(state.WordGuessResult.IsLastChance)
	s.Equal(models.WinnerImposters, sess.Winner())
}

func (s *SessionTestSuite) TestLastChance_SkipExhaustsCandidates() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	sess.StartGameRounds()
	s.playRound(sess)
	s.voteAll(sess, func(string) string { return "Ann" })

	s.advance(models.DefaultResultsDelay)
	sess.Tick()

	sess.SkipLastChance("Bob")
	s.Equal(models.PhaseLastChance, sess.Phase())

	sess.SkipLastChance("Ann")
	s.Equal(models.PhaseFinalResults, sess.Phase())
	s.Equal(models.WinnerPlayers, sess.Winner())
	s.Equal("", sess.LastChancePlayer())
}

func (s *SessionTestSuite) TestLastChance_NotArmedAfterEarlierGuess() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	sess.StartGameRounds()
	sess.GuessWord("Ann", "nope")
	s.playRound(sess)
	s.voteAll(sess, func(string) string { return "Ann" })

	s.advance(time.Minute)
	sess.Tick()
	s.Equal(models.PhaseVotingResults, sess.Phase())

	sess.ShowFinalResults()
	s.Equal(models.PhaseFinalResults, sess.Phase())
	s.Equal(models.WinnerPlayers, sess.Winner())
}

func (s *SessionTestSuite) TestResetGameKeepPlayers() {
	names := []string{"Ann", "Bob", "Cat"}
	sess := s.newGame(names, 1, 1)
	sess.StartGameRounds()
	s.playRound(sess)

	sess.ResetGameKeepPlayers()

	state := sess.State()
	s.Equal(models.PhaseCardReveal, state.Phase)
	s.Equal(names, state.Settings.PlayerNames)
	s.Len(state.AssignedRoles, 3)
	s.Empty(state.AllClues)
	s.Nil(state.CurrentRound)
	s.Nil(state.VotingState)
	s.Nil(state.GameWordPair)
	s.Equal("word2", state.CurrentWordPair.Word)
}

func (s *SessionTestSuite) TestResetOfflineSettings() {
	sess := s.newGame([]string{"Ann", "Bob", "Cat"}, 1, 1)
	created := sess.State().CreatedAt
	s.advance(time.Hour)

	sess.ResetOfflineSettings()

	state := sess.State()
	s.Equal(models.PhaseSetup, state.Phase)
	s.Equal(models.DefaultSettings(), state.Settings)
	s.Empty(state.AssignedRoles)
	s.Equal("test-session", state.ID)
	s.Equal(created, state.CreatedAt)
	s.Equal(s.now, state.UpdatedAt)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
