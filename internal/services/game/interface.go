package game

import "context"

// Service defines the operations a front end drives a pass-and-play game with.
// Every call loads the saved session, applies one engine operation and saves it back.
type Service interface {
	// CreateSession starts a new session in setup
	CreateSession(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error)

	// GetSession returns the session after applying any due time-driven transitions
	GetSession(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// ListActiveSessions returns sessions that can be resumed
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)

	// DeleteSession discards a session
	DeleteSession(ctx context.Context, input *SessionInput) error

	// UpdateSettings changes setup options
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SessionOutput, error)

	// StartGame validates the settings and deals the cards
	StartGame(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// RerollWord draws a new word and new roles before the rounds start
	RerollWord(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// RevealCard shows one player their card and marks it seen
	RevealCard(ctx context.Context, input *RevealCardInput) (*RevealCardOutput, error)

	// StartRounds locks in the word and starts round one
	StartRounds(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// SubmitClue records the current player's clue
	SubmitClue(ctx context.Context, input *SubmitClueInput) (*SessionOutput, error)

	// NextPlayer passes the turn on
	NextPlayer(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// ContinueRound plays another round
	ContinueRound(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// EndAndVote skips to voting
	EndAndVote(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// SubmitVote records the current voter's pick
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SessionOutput, error)

	// NextVoter passes the vote on, tallying after the last voter
	NextVoter(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// GuessWord is an impostor's attempt at the word during the rounds
	GuessWord(ctx context.Context, input *GuessWordInput) (*SessionOutput, error)

	// GuessWordInLastChance is the current last-chance impostor's attempt
	GuessWordInLastChance(ctx context.Context, input *GuessWordInput) (*SessionOutput, error)

	// SkipLastChance passes on the current impostor's last chance
	SkipLastChance(ctx context.Context, input *SkipLastChanceInput) (*SessionOutput, error)

	// ShowFinalResults moves from the voting results to the final screen
	ShowFinalResults(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// ResetSettings discards the game and all settings
	ResetSettings(ctx context.Context, input *SessionInput) (*SessionOutput, error)

	// ResetKeepPlayers starts over with the same players and settings
	ResetKeepPlayers(ctx context.Context, input *SessionInput) (*SessionOutput, error)
}
