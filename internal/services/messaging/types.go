package messaging

import (
	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSuspense is used while the impostor is still hidden
	ToneSuspense MessageTone = "suspense"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeInvalidSettings = "invalid_settings"
	ErrorTypeUnknownPlayer   = "unknown_player"
	ErrorTypeNotYourTurn     = "not_your_turn"
	ErrorTypeSelfVote        = "self_vote"
	ErrorTypeSessionNotFound = "session_not_found"
)

// Config contains configuration for the messaging service
type Config struct {
	// Random picks among the message variants
	Random random.Source
}

// GetPhaseMessageInput contains parameters for a phase announcement
type GetPhaseMessageInput struct {
	Phase models.Phase

	// RoundNumber and MaxRounds describe round progress
	RoundNumber int
	MaxRounds   int

	// PlayerName is whoever holds the device next, if anyone
	PlayerName string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPhaseMessageOutput contains the announcement
type GetPhaseMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetVotingResultMessageInput contains the tallied vote to announce
type GetVotingResultMessageInput struct {
	EliminatedPlayer     string
	IsImposterEliminated bool
	WasTie               bool
}

// GetVotingResultMessageOutput contains the vote reveal
type GetVotingResultMessageOutput struct {
	Title   string
	Message string
}

// GetGuessResultMessageInput contains an impostor's guess to react to
type GetGuessResultMessageInput struct {
	PlayerName   string
	IsWin        bool
	IsLastChance bool
	TargetWord   string
}

// GetGuessResultMessageOutput contains the reaction
type GetGuessResultMessageOutput struct {
	Title   string
	Message string
}

// GetFinalResultMessageInput contains the finished game's outcome
type GetFinalResultMessageInput struct {
	Winner    models.Winner
	Imposters []string
	Word      string
}

// GetFinalResultMessageOutput contains the closing text
type GetFinalResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
