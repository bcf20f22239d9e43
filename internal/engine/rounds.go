package engine

import (
	"github.com/KirkDiggler/imposter/internal/models"
)

// ContinueToNextRound plays another round: new roles and word, same turn order.
// Clues from earlier rounds are kept.
func (s *Session) ContinueToNextRound() {
	if s.state.Phase != models.PhaseRoundDecision || s.state.CurrentRound == nil {
		s.ignore("continue_to_next_round", "no round decision pending")
		return
	}

	order := append([]string(nil), s.state.CurrentRound.PlayerOrder...)

	s.state.CurrentRoundNumber++
	s.state.AssignedRoles = AssignRoles(s.random, s.rolledNames(), s.state.Settings.ImposterCount)

	pair := s.pickWord()
	live := *pair
	s.state.CurrentWordPair = pair
	s.state.GameWordPair = &live

	s.clearGuessState()
	s.state.CurrentRound = &models.GameRound{PlayerOrder: order, Clues: []models.PlayerClue{}}
	s.state.VotingState = nil
	s.state.VotingOutcome = nil
	s.enterRoundStarting()

	s.log.Debug("next round", "session_id", s.state.ID, "round", s.state.CurrentRoundNumber)
}

// EndGameAndVote skips the remaining rounds and goes straight to voting
func (s *Session) EndGameAndVote() {
	if s.state.Phase != models.PhaseRoundDecision {
		s.ignore("end_game_and_vote", "no round decision pending")
		return
	}
	s.enterVoting()
	s.touch()
}

// Tick applies time-driven transitions whose deadline has passed: the end of the
// round-starting announcement, the start of the last chance, and last-chance timeouts.
func (s *Session) Tick() {
	now := s.clock.Now()

	switch s.state.Phase {
	case models.PhaseRoundStarting:
		if !now.Before(s.state.PhaseDeadline) {
			s.setPhase(models.PhaseClueCollection)
			s.touch()
		}
	case models.PhaseVotingResults:
		if s.lastChanceArmed() && !now.Before(s.state.PhaseDeadline) {
			s.beginLastChance()
		}
	case models.PhaseLastChance:
		if lc := s.state.LastChance; lc != nil && !now.Before(lc.Deadline) {
			s.log.Debug("last chance timed out", "session_id", s.state.ID, "player", lc.Current())
			s.advanceLastChance()
		}
	}
}

func (s *Session) enterRoundStarting() {
	s.setPhase(models.PhaseRoundStarting)
	s.state.PhaseDeadline = s.deadlineAfter(s.state.Settings.StartDelay)
	s.touch()
}
