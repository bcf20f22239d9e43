package models

// Phase is the externally observed stage of a game session
type Phase string

const (
	// PhaseSetup is pre-game configuration: player count, names, impostor count
	PhaseSetup Phase = "setup"

	// PhaseCardReveal is players privately looking at their word or hint
	PhaseCardReveal Phase = "card_reveal"

	// PhaseRoundStarting is the transient "round begins" announcement
	PhaseRoundStarting Phase = "round_starting"

	// PhaseClueCollection is players giving one clue each in turn order
	PhaseClueCollection Phase = "clue_collection"

	// PhaseRoundDecision is the "play another round or vote now?" prompt
	PhaseRoundDecision Phase = "round_decision"

	// PhaseVoting is every player naming a suspect
	PhaseVoting Phase = "voting"

	// PhaseVotingResults shows the tally and who was eliminated
	PhaseVotingResults Phase = "voting_results"

	// PhaseLastChance lets impostors guess the word after one of them was voted out
	PhaseLastChance Phase = "last_chance"

	// PhaseFinalResults is the end screen
	PhaseFinalResults Phase = "final_results"
)

var allPhases = []Phase{
	PhaseSetup,
	PhaseCardReveal,
	PhaseRoundStarting,
	PhaseClueCollection,
	PhaseRoundDecision,
	PhaseVoting,
	PhaseVotingResults,
	PhaseLastChance,
	PhaseFinalResults,
}

// Phases returns every phase in flow order
func Phases() []Phase {
	out := make([]Phase, len(allPhases))
	copy(out, allPhases)
	return out
}

// IsValid reports whether p is a known phase
func (p Phase) IsValid() bool {
	for _, known := range allPhases {
		if p == known {
			return true
		}
	}
	return false
}

// IsInRound reports whether rounds have started and voting has not been tallied,
// the window in which an impostor may attempt an in-round word guess.
func (p Phase) IsInRound() bool {
	switch p {
	case PhaseRoundStarting, PhaseClueCollection, PhaseRoundDecision, PhaseVoting:
		return true
	default:
		return false
	}
}

// IsPreRound reports whether the game has not started its first round yet
func (p Phase) IsPreRound() bool {
	return p == PhaseSetup || p == PhaseCardReveal
}
