package models

import "time"

// Difficulty selects the word tier a WordPair is drawn from
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyRandom draws from any of the concrete tiers
	DifficultyRandom Difficulty = "random"
)

// Tiers returns the concrete difficulty tiers, excluding DifficultyRandom
func Tiers() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// IsValid reports whether d is a known difficulty
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyRandom:
		return true
	}
	return false
}

// GameMode distinguishes pass-and-play from networked play
type GameMode string

const (
	// GameModeOffline is one device passed between players
	GameModeOffline GameMode = "offline"

	// GameModeOnline is reserved for lobby-based play and is not playable here
	GameModeOnline GameMode = "online"
)

const (
	MinPlayers = 3
	MaxPlayers = 12

	DefaultPlayerCount      = 4
	DefaultImposterCount    = 1
	DefaultMaxRounds        = 3
	DefaultStartDelay       = 3 * time.Second
	DefaultResultsDelay     = 3 * time.Second
	DefaultLastChanceWindow = 30 * time.Second
)

// Settings is the pre-game configuration of a session
type Settings struct {
	PlayerCount   int        `json:"player_count"`
	ImposterCount int        `json:"imposter_count"`
	PlayerNames   []string   `json:"player_names"`
	MaxRounds     int        `json:"max_rounds"`
	Difficulty    Difficulty `json:"difficulty"`
	GameMode      GameMode   `json:"game_mode"`

	// StartDelay is how long the round-starting announcement stays up
	StartDelay time.Duration `json:"start_delay"`

	// ResultsDelay is how long voting results show before the last chance begins
	ResultsDelay time.Duration `json:"results_delay"`

	// LastChanceWindow is each impostor's countdown in the last chance
	LastChanceWindow time.Duration `json:"last_chance_window"`
}

// DefaultSettings returns the settings a fresh session starts from
func DefaultSettings() Settings {
	return Settings{
		PlayerCount:      DefaultPlayerCount,
		ImposterCount:    DefaultImposterCount,
		PlayerNames:      make([]string, DefaultPlayerCount),
		MaxRounds:        DefaultMaxRounds,
		Difficulty:       DifficultyRandom,
		GameMode:         GameModeOffline,
		StartDelay:       DefaultStartDelay,
		ResultsDelay:     DefaultResultsDelay,
		LastChanceWindow: DefaultLastChanceWindow,
	}
}

// Clone returns a copy that shares no slices with s
func (s Settings) Clone() Settings {
	out := s
	out.PlayerNames = append([]string(nil), s.PlayerNames...)
	return out
}
