package engine

import (
	"strings"

	"github.com/KirkDiggler/imposter/internal/models"
)

// AdvanceVoter moves to the next voter and marks the vote complete after the last one
func AdvanceVoter(v *models.VotingState) Hint {
	if !v.IsComplete {
		v.CurrentVoterIndex++
	}
	if v.CurrentVoterIndex < len(v.PlayerOrder) {
		return HintContinueVoting
	}
	v.CurrentVoterIndex = len(v.PlayerOrder)
	v.IsComplete = true
	return HintVotingDone
}

// Tally counts the votes and picks who is eliminated.
//
// Tied players are considered in the order they first received a vote. When a tie
// mixes impostors and innocents, the first innocent is eliminated so a tied impostor
// survives; this favours impostors on purpose. Any other tie eliminates the first
// tied player. No votes at all eliminates nobody.
func Tally(v *models.VotingState, roles []models.PlayerRole) models.VotingOutcome {
	counts := make(map[string]int)
	var firstVoted []string
	for _, vote := range v.Votes {
		if _, seen := counts[vote.TargetName]; !seen {
			firstVoted = append(firstVoted, vote.TargetName)
		}
		counts[vote.TargetName]++
	}

	outcome := models.VotingOutcome{}
	listed := make(map[string]bool, len(v.PlayerOrder))
	for _, name := range v.PlayerOrder {
		listed[name] = true
		outcome.Tallies = append(outcome.Tallies, models.VoteTally{PlayerName: name, Votes: counts[name]})
	}
	for _, name := range firstVoted {
		if !listed[name] {
			outcome.Tallies = append(outcome.Tallies, models.VoteTally{PlayerName: name, Votes: counts[name]})
		}
	}

	maxVotes := 0
	for _, name := range firstVoted {
		if counts[name] > maxVotes {
			maxVotes = counts[name]
		}
	}
	var tied []string
	for _, name := range firstVoted {
		if counts[name] == maxVotes {
			tied = append(tied, name)
		}
	}
	if len(tied) == 0 {
		return outcome
	}

	imposters := make(map[string]bool)
	for _, r := range roles {
		if r.IsImposter {
			imposters[r.PlayerName] = true
		}
	}

	eliminated := tied[0]
	if len(tied) > 1 {
		outcome.WasTie = true
		hasImposter, firstInnocent := false, ""
		for _, name := range tied {
			if imposters[name] {
				hasImposter = true
			} else if firstInnocent == "" {
				firstInnocent = name
			}
		}
		if hasImposter && firstInnocent != "" {
			eliminated = firstInnocent
		}
	}

	outcome.EliminatedPlayer = eliminated
	outcome.IsImposterEliminated = imposters[eliminated]
	return outcome
}

// StartVoting opens voting in the last round's turn order. Calling it again once
// voting exists does nothing.
func (s *Session) StartVoting() {
	if s.state.VotingState != nil {
		return
	}
	if s.state.Phase != models.PhaseVoting || s.state.CurrentRound == nil {
		s.ignore("start_voting", "not in voting")
		return
	}

	s.state.VotingState = &models.VotingState{
		PlayerOrder: append([]string(nil), s.state.CurrentRound.PlayerOrder...),
		Votes:       []models.Vote{},
	}
	s.touch()
}

// SubmitVote records the current voter's suspect. Target checking is left to the caller.
func (s *Session) SubmitVote(target string) {
	v := s.state.VotingState
	if s.state.Phase != models.PhaseVoting || v == nil || v.IsComplete {
		s.ignore("submit_vote", "no voter up")
		return
	}
	target = strings.TrimSpace(target)
	if target == "" {
		s.ignore("submit_vote", "empty target")
		return
	}
	voter := v.CurrentVoter()
	if v.HasVoted(voter) {
		s.ignore("submit_vote", "already voted")
		return
	}

	v.Votes = append(v.Votes, models.Vote{VoterName: voter, TargetName: target})
	s.touch()
}

// NextVoter passes the device on; after the last voter the votes are tallied
func (s *Session) NextVoter() {
	v := s.state.VotingState
	if s.state.Phase != models.PhaseVoting || v == nil || v.IsComplete {
		s.ignore("next_voter", "no voter up")
		return
	}

	if AdvanceVoter(v) == HintVotingDone {
		outcome := Tally(v, s.state.AssignedRoles)
		s.state.VotingOutcome = &outcome
		s.setPhase(models.PhaseVotingResults)
		if s.lastChanceArmed() {
			s.state.PhaseDeadline = s.deadlineAfter(s.state.Settings.ResultsDelay)
		}
		s.log.Info("votes tallied", "session_id", s.state.ID,
			"eliminated", outcome.EliminatedPlayer, "imposter_eliminated", outcome.IsImposterEliminated, "tie", outcome.WasTie)
	}
	s.touch()
}

func (s *Session) enterVoting() {
	s.setPhase(models.PhaseVoting)
	s.StartVoting()
}
