package models

import "time"

// GameSession is the single source of truth for one pass-and-play game
type GameSession struct {
	ID       string   `json:"id"`
	Settings Settings `json:"settings"`

	AssignedRoles []PlayerRole `json:"assigned_roles"`

	// CurrentWordPair is the preview rolled during setup; GameWordPair is live once rounds start
	CurrentWordPair *WordPair `json:"current_word_pair,omitempty"`
	GameWordPair    *WordPair `json:"game_word_pair,omitempty"`

	CurrentRoundNumber int          `json:"current_round_number"`
	AllClues           []PlayerClue `json:"all_clues"`
	CurrentRound       *GameRound   `json:"current_round,omitempty"`

	VotingState   *VotingState   `json:"voting_state,omitempty"`
	VotingOutcome *VotingOutcome `json:"voting_outcome,omitempty"`

	WordGuessResult      *WordGuessResult `json:"word_guess_result,omitempty"`
	WordGuessAttempted   bool             `json:"word_guess_attempted"`
	WordGuessingDisabled bool             `json:"word_guessing_disabled"`
	LastChance           *LastChance      `json:"last_chance,omitempty"`

	Phase Phase `json:"phase"`

	// PhaseDeadline is when a time-driven transition out of Phase becomes due
	PhaseDeadline time.Time `json:"phase_deadline"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the session
func (s *GameSession) Clone() *GameSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Settings = s.Settings.Clone()
	out.AssignedRoles = append([]PlayerRole(nil), s.AssignedRoles...)
	out.AllClues = append([]PlayerClue(nil), s.AllClues...)
	if s.CurrentWordPair != nil {
		wp := *s.CurrentWordPair
		out.CurrentWordPair = &wp
	}
	if s.GameWordPair != nil {
		wp := *s.GameWordPair
		out.GameWordPair = &wp
	}
	if s.WordGuessResult != nil {
		r := *s.WordGuessResult
		out.WordGuessResult = &r
	}
	out.CurrentRound = s.CurrentRound.clone()
	out.VotingState = s.VotingState.clone()
	out.VotingOutcome = s.VotingOutcome.clone()
	out.LastChance = s.LastChance.clone()
	return &out
}

// Role returns the assigned role for name, if any
func (s *GameSession) Role(name string) (PlayerRole, bool) {
	for _, r := range s.AssignedRoles {
		if r.PlayerName == name {
			return r, true
		}
	}
	return PlayerRole{}, false
}

// Imposters returns impostor names in role-list order
func (s *GameSession) Imposters() []string {
	var out []string
	for _, r := range s.AssignedRoles {
		if r.IsImposter {
			out = append(out, r.PlayerName)
		}
	}
	return out
}
