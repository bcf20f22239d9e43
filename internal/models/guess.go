package models

import "time"

// WordGuessResult records an impostor's attempt at the secret word
type WordGuessResult struct {
	IsWin        bool   `json:"is_win"`
	GuessedWord  string `json:"guessed_word"`
	GuessedBy    string `json:"guessed_by"`
	IsLastChance bool   `json:"is_last_chance"`
	TargetWord   string `json:"target_word"`
	TargetHint   string `json:"target_hint"`
}

// LastChance walks the impostors one at a time after an impostor was voted out
type LastChance struct {
	// Candidates are every impostor in role-list order, the eliminated one included,
	// not only the impostors still in the game
	Candidates   []string `json:"candidates"`
	CurrentIndex int      `json:"current_index"`

	// Deadline ends the current candidate's window
	Deadline time.Time `json:"deadline"`
}

// Current returns the impostor whose window is open, or "" when exhausted
func (l *LastChance) Current() string {
	if l == nil || l.CurrentIndex < 0 || l.CurrentIndex >= len(l.Candidates) {
		return ""
	}
	return l.Candidates[l.CurrentIndex]
}

func (l *LastChance) clone() *LastChance {
	if l == nil {
		return nil
	}
	out := *l
	out.Candidates = append([]string(nil), l.Candidates...)
	return &out
}
