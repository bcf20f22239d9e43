package models

// PlayerRole is one player's hidden role for the current assignment.
// PlayerName doubles as the player identifier.
type PlayerRole struct {
	PlayerName  string `json:"player_name"`
	IsImposter  bool   `json:"is_imposter"`
	HasSeenCard bool   `json:"has_seen_card"`
}

// Card is what a single player is shown during card reveal
type Card struct {
	PlayerName string `json:"player_name"`
	IsImposter bool   `json:"is_imposter"`

	// Text is the secret word for players and the hint for impostors
	Text string `json:"text"`
}

// Winner names the side that won a finished game
type Winner string

const (
	WinnerNone      Winner = ""
	WinnerImposters Winner = "imposters"
	WinnerPlayers   Winner = "players"
)
