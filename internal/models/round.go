package models

// PlayerClue is one recorded clue; never modified once appended
type PlayerClue struct {
	PlayerName  string `json:"player_name"`
	Clue        string `json:"clue"`
	RoundNumber int    `json:"round_number"`
}

// GameRound is a single pass of every player giving a clue
type GameRound struct {
	PlayerOrder        []string     `json:"player_order"`
	CurrentPlayerIndex int          `json:"current_player_index"`
	Clues              []PlayerClue `json:"clues"`
	IsComplete         bool         `json:"is_complete"`

	// ClueSubmitted is set once the current player has given their clue
	ClueSubmitted bool `json:"clue_submitted"`
}

// CurrentPlayer returns whose turn it is, or "" once the round is complete
func (r *GameRound) CurrentPlayer() string {
	if r == nil || r.CurrentPlayerIndex < 0 || r.CurrentPlayerIndex >= len(r.PlayerOrder) {
		return ""
	}
	return r.PlayerOrder[r.CurrentPlayerIndex]
}

func (r *GameRound) clone() *GameRound {
	if r == nil {
		return nil
	}
	out := *r
	out.PlayerOrder = append([]string(nil), r.PlayerOrder...)
	out.Clues = append([]PlayerClue(nil), r.Clues...)
	return &out
}
