package models

// Vote is one player's pick for who the impostor is
type Vote struct {
	VoterName  string `json:"voter_name"`
	TargetName string `json:"target_name"`
}

// VotingState tracks the voting pass; created once when voting begins
type VotingState struct {
	PlayerOrder       []string `json:"player_order"`
	Votes             []Vote   `json:"votes"`
	CurrentVoterIndex int      `json:"current_voter_index"`
	IsComplete        bool     `json:"is_complete"`
}

// CurrentVoter returns who votes next, or "" once everyone has voted
func (v *VotingState) CurrentVoter() string {
	if v == nil || v.CurrentVoterIndex < 0 || v.CurrentVoterIndex >= len(v.PlayerOrder) {
		return ""
	}
	return v.PlayerOrder[v.CurrentVoterIndex]
}

// HasVoted reports whether voter already has a recorded vote
func (v *VotingState) HasVoted(voter string) bool {
	if v == nil {
		return false
	}
	for _, vote := range v.Votes {
		if vote.VoterName == voter {
			return true
		}
	}
	return false
}

// VoteTally is how many votes a player received
type VoteTally struct {
	PlayerName string `json:"player_name"`
	Votes      int    `json:"votes"`
}

// VotingOutcome is the result of tallying a completed vote
type VotingOutcome struct {
	// Tallies has one entry per player in voting order, zero counts included
	Tallies []VoteTally `json:"tallies"`

	// EliminatedPlayer is empty only when no votes were cast
	EliminatedPlayer     string `json:"eliminated_player"`
	IsImposterEliminated bool   `json:"is_imposter_eliminated"`

	// WasTie is set when more than one player shared the top count
	WasTie bool `json:"was_tie"`
}

func (v *VotingState) clone() *VotingState {
	if v == nil {
		return nil
	}
	out := *v
	out.PlayerOrder = append([]string(nil), v.PlayerOrder...)
	out.Votes = append([]Vote(nil), v.Votes...)
	return &out
}

func (o *VotingOutcome) clone() *VotingOutcome {
	if o == nil {
		return nil
	}
	out := *o
	out.Tallies = append([]VoteTally(nil), o.Tallies...)
	return &out
}
