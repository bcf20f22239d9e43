package engine

import (
	"strings"
	"time"

	"github.com/KirkDiggler/imposter/internal/common/clock"
	"github.com/KirkDiggler/imposter/internal/models"
)

// NormalizeGuess is the comparison form of a guess: trimmed and lower-cased
func NormalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanImposterGuessWord reports whether name may attempt the word now. Only one
// attempt exists per game, shared by all impostors.
func (s *Session) CanImposterGuessWord(name string) bool {
	return s.IsPlayerImposter(name) && !s.state.WordGuessingDisabled && !s.state.WordGuessAttempted
}

// GuessWord is an impostor's in-round attempt; a correct guess wins the game at once
func (s *Session) GuessWord(name, guess string) {
	if !s.state.Phase.IsInRound() || s.state.GameWordPair == nil {
		s.ignore("guess_word", "no round in progress")
		return
	}
	if !s.CanImposterGuessWord(name) {
		s.ignore("guess_word", "player may not guess")
		return
	}
	if NormalizeGuess(guess) == "" {
		s.ignore("guess_word", "empty guess")
		return
	}

	if s.resolveGuess(name, guess, false) {
		s.setPhase(models.PhaseFinalResults)
	}
	s.touch()
}

// GuessWordInLastChance is the current last-chance impostor's attempt.
// A wrong guess passes the turn to the next impostor.
func (s *Session) GuessWordInLastChance(name, guess string) {
	lc := s.state.LastChance
	if s.state.Phase != models.PhaseLastChance || lc == nil || lc.Current() != name {
		s.ignore("guess_word_in_last_chance", "not this player's last chance")
		return
	}
	if !s.clock.Now().Before(lc.Deadline) {
		s.advanceLastChance()
		return
	}
	if NormalizeGuess(guess) == "" {
		s.ignore("guess_word_in_last_chance", "empty guess")
		return
	}

	if s.resolveGuess(name, guess, true) {
		s.setPhase(models.PhaseFinalResults)
		s.touch()
		return
	}
	s.advanceLastChance()
}

// SkipLastChance gives up the current impostor's last chance
func (s *Session) SkipLastChance(name string) {
	lc := s.state.LastChance
	if s.state.Phase != models.PhaseLastChance || lc == nil || lc.Current() != name {
		s.ignore("skip_last_chance", "not this player's last chance")
		return
	}
	s.advanceLastChance()
}

// LastChancePlayer returns the impostor whose last-chance window is open
func (s *Session) LastChancePlayer() string {
	if s.state.Phase != models.PhaseLastChance {
		return ""
	}
	return s.state.LastChance.Current()
}

// LastChanceRemaining returns the time left in the open last-chance window
func (s *Session) LastChanceRemaining() time.Duration {
	if s.state.Phase != models.PhaseLastChance || s.state.LastChance == nil {
		return 0
	}
	return clock.Remaining(s.clock, s.state.LastChance.Deadline)
}

// ShowFinalResults leaves the voting results screen when no last chance is due
func (s *Session) ShowFinalResults() {
	if s.state.Phase != models.PhaseVotingResults || s.lastChanceArmed() {
		s.ignore("show_final_results", "not showing results or last chance pending")
		return
	}
	s.setPhase(models.PhaseFinalResults)
	s.touch()
}

// Winner names the winning side once the game is over
func (s *Session) Winner() models.Winner {
	if s.state.Phase != models.PhaseFinalResults {
		return models.WinnerNone
	}
	if r := s.state.WordGuessResult; r != nil && r.IsWin {
		return models.WinnerImposters
	}
	if o := s.state.VotingOutcome; o != nil && o.IsImposterEliminated {
		return models.WinnerPlayers
	}
	return models.WinnerImposters
}

// resolveGuess records an attempt and reports whether it matched the live word
func (s *Session) resolveGuess(name, guess string, lastChance bool) bool {
	target := s.state.GameWordPair
	isWin := NormalizeGuess(guess) == NormalizeGuess(target.Word)

	s.state.WordGuessAttempted = true
	s.state.WordGuessingDisabled = !isWin
	s.state.WordGuessResult = &models.WordGuessResult{
		IsWin:        isWin,
		GuessedWord:  guess,
		GuessedBy:    name,
		IsLastChance: lastChance,
		TargetWord:   target.Word,
		TargetHint:   target.ImposterHint,
	}

	s.log.Info("word guessed", "session_id", s.state.ID, "player", name, "win", isWin, "last_chance", lastChance)
	return isWin
}

// lastChanceArmed holds on the results screen when an impostor was voted out
// before anyone spent the guess
func (s *Session) lastChanceArmed() bool {
	o := s.state.VotingOutcome
	return s.state.Phase == models.PhaseVotingResults &&
		o != nil && o.IsImposterEliminated && !s.state.WordGuessAttempted
}

func (s *Session) beginLastChance() {
	candidates := s.state.Imposters()
	s.setPhase(models.PhaseLastChance)
	s.state.LastChance = &models.LastChance{
		Candidates: candidates,
		Deadline:   s.deadlineAfter(s.state.Settings.LastChanceWindow),
	}
	if len(candidates) == 0 {
		s.setPhase(models.PhaseFinalResults)
	}
	s.touch()
}

func (s *Session) advanceLastChance() {
	lc := s.state.LastChance
	lc.CurrentIndex++
	if lc.CurrentIndex >= len(lc.Candidates) {
		lc.CurrentIndex = len(lc.Candidates)
		s.setPhase(models.PhaseFinalResults)
	} else {
		lc.Deadline = s.deadlineAfter(s.state.Settings.LastChanceWindow)
	}
	s.touch()
}
