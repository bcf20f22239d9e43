package engine

import (
	"strings"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
)

// Hint tells the orchestrator where a turn or voter advance leads
type Hint string

const (
	HintContinueTurn       Hint = "continue_turn"
	HintNeedsRoundDecision Hint = "needs_round_decision"
	HintGoToVoting         Hint = "go_to_voting"
	HintContinueVoting     Hint = "continue_voting"
	HintVotingDone         Hint = "voting_done"
)

// NewRound shuffles names into a fresh turn order
func NewRound(src random.Source, names []string) *models.GameRound {
	return &models.GameRound{
		PlayerOrder: random.ShuffledCopy(src, names),
		Clues:       []models.PlayerClue{},
	}
}

// AdvanceTurn moves to the next player. When the last player has gone the round is
// marked complete and the hint says whether to ask about another round or vote.
func AdvanceTurn(round *models.GameRound, roundNumber, maxRounds int) Hint {
	if !round.IsComplete {
		round.CurrentPlayerIndex++
		round.ClueSubmitted = false
	}
	if round.CurrentPlayerIndex < len(round.PlayerOrder) {
		return HintContinueTurn
	}

	round.CurrentPlayerIndex = len(round.PlayerOrder)
	round.IsComplete = true
	if roundNumber < maxRounds {
		return HintNeedsRoundDecision
	}
	return HintGoToVoting
}

func (s *Session) startRound(names []string) *models.GameRound {
	return NewRound(s.random, names)
}

// SubmitPlayerClue records the current player's clue. Blank clues and a second clue
// in the same turn are ignored; the turn only moves on with NextPlayer.
func (s *Session) SubmitPlayerClue(clue string) {
	round := s.state.CurrentRound
	if s.state.Phase != models.PhaseClueCollection || round == nil || round.IsComplete {
		s.ignore("submit_clue", "no turn in progress")
		return
	}
	if round.ClueSubmitted {
		s.ignore("submit_clue", "clue already given this turn")
		return
	}

	clue = strings.TrimSpace(clue)
	if clue == "" {
		s.ignore("submit_clue", "empty clue")
		return
	}

	entry := models.PlayerClue{
		PlayerName:  round.CurrentPlayer(),
		Clue:        clue,
		RoundNumber: s.state.CurrentRoundNumber,
	}
	round.Clues = append(round.Clues, entry)
	s.state.AllClues = append(s.state.AllClues, entry)
	round.ClueSubmitted = true
	s.touch()
}

// NextPlayer hands the device to the next player, or ends the round
func (s *Session) NextPlayer() {
	round := s.state.CurrentRound
	if s.state.Phase != models.PhaseClueCollection || round == nil || round.IsComplete {
		s.ignore("next_player", "no turn in progress")
		return
	}

	switch AdvanceTurn(round, s.state.CurrentRoundNumber, s.state.Settings.MaxRounds) {
	case HintNeedsRoundDecision:
		s.setPhase(models.PhaseRoundDecision)
	case HintGoToVoting:
		s.enterVoting()
	}
	s.touch()
}
