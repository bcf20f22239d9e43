package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPhaseMessage returns an announcement for entering a phase
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetVotingResultMessage returns the reveal text for a tallied vote
	GetVotingResultMessage(ctx context.Context, input *GetVotingResultMessageInput) (*GetVotingResultMessageOutput, error)

	// GetGuessResultMessage returns the reaction to an impostor's word guess
	GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error)

	// GetFinalResultMessage returns the closing text for a finished game
	GetFinalResultMessage(ctx context.Context, input *GetFinalResultMessageInput) (*GetFinalResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
