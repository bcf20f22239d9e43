package game

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/imposter/internal/common/clock"
	"github.com/KirkDiggler/imposter/internal/common/uuid"
	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
	sessionRepo "github.com/KirkDiggler/imposter/internal/repositories/session"
	"github.com/KirkDiggler/imposter/internal/words"
)

// Config holds configuration for the game service
type Config struct {
	// Defaults seed new sessions and full resets; nil means models.DefaultSettings()
	Defaults *models.Settings

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Words         words.Provider
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// SessionInput identifies the session an operation applies to
type SessionInput struct {
	SessionID string
}

// SessionOutput is the session after an operation, with the derived values a screen needs
type SessionOutput struct {
	// Session is a snapshot; changing it has no effect on the game
	Session *models.GameSession

	// CurrentPlayer is who gives the next clue
	CurrentPlayer string

	// CurrentVoter is who votes next
	CurrentVoter string

	// LastChancePlayer is the impostor whose last chance is open
	LastChancePlayer string

	// LastChanceRemaining is the time left for LastChancePlayer
	LastChanceRemaining time.Duration

	// PhaseRemaining is the time until the next time-driven transition, if any
	PhaseRemaining time.Duration

	// MaxImposters is the largest impostor count allowed for the configured players
	MaxImposters int

	// Winner is set once the game reaches final results
	Winner models.Winner
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Settings override the service defaults when set
	Settings *models.Settings
}

// ListActiveSessionsInput contains parameters for listing sessions
type ListActiveSessionsInput struct {
}

// ListActiveSessionsOutput contains the resumable session IDs
type ListActiveSessionsOutput struct {
	SessionIDs []string
}

// UpdateSettingsInput changes any subset of the setup options; nil fields are left alone
type UpdateSettingsInput struct {
	SessionID string

	PlayerCount   *int
	ImposterCount *int

	// PlayerNames are applied seat by seat after PlayerCount
	PlayerNames []string

	MaxRounds  *int
	Difficulty *models.Difficulty
	GameMode   *models.GameMode
}

// RevealCardInput contains parameters for showing a player their card
type RevealCardInput struct {
	SessionID  string
	PlayerName string
}

// RevealCardOutput contains the card the player should see
type RevealCardOutput struct {
	Card         models.Card
	AllCardsSeen bool
}

// SubmitClueInput contains parameters for giving a clue
type SubmitClueInput struct {
	SessionID string
	Clue      string
}

// SubmitVoteInput contains parameters for casting a vote
type SubmitVoteInput struct {
	SessionID string
	Target    string
}

// GuessWordInput contains parameters for an impostor's word guess
type GuessWordInput struct {
	SessionID  string
	PlayerName string
	Guess      string
}

// SkipLastChanceInput contains parameters for passing on a last chance
type SkipLastChanceInput struct {
	SessionID  string
	PlayerName string
}
