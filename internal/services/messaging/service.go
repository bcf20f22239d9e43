package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
)

// service implements the Service interface
type service struct {
	// Random selects among message variants
	random random.Source
}

// New creates a new messaging service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: cfg.Random,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}

// GetPhaseMessage returns an announcement for entering a phase
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneSuspense
	}

	var messages []string
	switch input.Phase {
	case models.PhaseSetup:
		tone = ToneNeutral
		messages = []string{
			"Gather round. Who's playing tonight?",
			"Set the table: players, impostors, rounds.",
			"New game. Pick your suspects.",
		}
	case models.PhaseCardReveal:
		messages = []string{
			"Pass the device around. Peek at your card, then hide it.",
			"Everyone gets a card. Nobody shows theirs.",
			"Look at your card alone. Poker faces on.",
		}
	case models.PhaseRoundStarting:
		messages = []string{
			fmt.Sprintf("Round %d of %d. Get ready...", input.RoundNumber, input.MaxRounds),
			fmt.Sprintf("Round %d is about to begin. Somebody here is lying.", input.RoundNumber),
			fmt.Sprintf("Round %d. Choose your words carefully.", input.RoundNumber),
		}
	case models.PhaseClueCollection:
		messages = []string{
			fmt.Sprintf("%s, give one clue. Not too obvious!", input.PlayerName),
			fmt.Sprintf("Your turn, %s. One word, one clue.", input.PlayerName),
			fmt.Sprintf("%s, convince us you know the word.", input.PlayerName),
		}
	case models.PhaseRoundDecision:
		messages = []string{
			"Another round, or is it time to point fingers?",
			"Enough clues? Vote now or play one more round.",
			"Keep digging, or call the vote?",
		}
	case models.PhaseVoting:
		messages = []string{
			fmt.Sprintf("%s, who's the impostor?", input.PlayerName),
			fmt.Sprintf("%s, cast your vote in secret.", input.PlayerName),
			fmt.Sprintf("Point the finger, %s.", input.PlayerName),
		}
	case models.PhaseVotingResults:
		messages = []string{
			"The votes are in...",
			"Drumroll please.",
			"Let's see who you sent packing.",
		}
	case models.PhaseLastChance:
		messages = []string{
			fmt.Sprintf("%s, one last shot. What's the word?", input.PlayerName),
			fmt.Sprintf("Caught! But %s can still steal the win.", input.PlayerName),
			fmt.Sprintf("Clock's ticking, %s. Name the word.", input.PlayerName),
		}
	case models.PhaseFinalResults:
		tone = ToneCelebration
		messages = []string{
			"Game over!",
			"And that's the game.",
			"The truth comes out.",
		}
	default:
		return nil, fmt.Errorf("unknown phase %q", input.Phase)
	}

	return &GetPhaseMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetVotingResultMessage returns the reveal text for a tallied vote
func (s *service) GetVotingResultMessage(ctx context.Context, input *GetVotingResultMessageInput) (*GetVotingResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.EliminatedPlayer == "" {
		return &GetVotingResultMessageOutput{
			Title: "No votes",
			Message: s.pick([]string{
				"Nobody voted. The impostors thank you for your cooperation.",
				"Not a single vote? The impostors walk free.",
			}),
		}, nil
	}

	var prefix string
	if input.WasTie {
		prefix = "It's a tie! "
	}

	if input.IsImposterEliminated {
		return &GetVotingResultMessageOutput{
			Title: "Impostor caught!",
			Message: prefix + s.pick([]string{
				fmt.Sprintf("%s was an impostor. Nice detective work!", input.EliminatedPlayer),
				fmt.Sprintf("Busted! %s was faking it all along.", input.EliminatedPlayer),
				fmt.Sprintf("%s is out, and yes, they were lying.", input.EliminatedPlayer),
			}),
		}, nil
	}

	return &GetVotingResultMessageOutput{
		Title: "Wrong person!",
		Message: prefix + s.pick([]string{
			fmt.Sprintf("%s was innocent. The impostor is laughing.", input.EliminatedPlayer),
			fmt.Sprintf("Poor %s knew the word the whole time.", input.EliminatedPlayer),
			fmt.Sprintf("%s is out, and the real impostor slips away.", input.EliminatedPlayer),
		}),
	}, nil
}

// GetGuessResultMessage returns the reaction to an impostor's word guess
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.IsWin {
		title := "Word stolen!"
		if input.IsLastChance {
			title = "Last-second steal!"
		}
		return &GetGuessResultMessageOutput{
			Title: title,
			Message: s.pick([]string{
				fmt.Sprintf("%s guessed %q. The impostors win!", input.PlayerName, input.TargetWord),
				fmt.Sprintf("%s figured it out: %q. Sneaky!", input.PlayerName, input.TargetWord),
			}),
		}, nil
	}

	return &GetGuessResultMessageOutput{
		Title: "Wrong guess",
		Message: s.pick([]string{
			fmt.Sprintf("Nope, %s. That's not it.", input.PlayerName),
			fmt.Sprintf("%s swings and misses.", input.PlayerName),
			fmt.Sprintf("Not even close, %s.", input.PlayerName),
		}),
	}, nil
}

// GetFinalResultMessage returns the closing text for a finished game
func (s *service) GetFinalResultMessage(ctx context.Context, input *GetFinalResultMessageInput) (*GetFinalResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	imposters := strings.Join(input.Imposters, " and ")

	switch input.Winner {
	case models.WinnerPlayers:
		return &GetFinalResultMessageOutput{
			Title: "Players win!",
			Message: s.pick([]string{
				fmt.Sprintf("The word was %q. %s never stood a chance.", input.Word, imposters),
				fmt.Sprintf("Justice! %s couldn't crack %q.", imposters, input.Word),
			}),
			Tone: ToneCelebration,
		}, nil
	case models.WinnerImposters:
		return &GetFinalResultMessageOutput{
			Title: "Impostors win!",
			Message: s.pick([]string{
				fmt.Sprintf("%s fooled you all. The word was %q.", imposters, input.Word),
				fmt.Sprintf("Deception pays. %s take the win.", imposters),
			}),
			Tone: ToneFunny,
		}, nil
	}

	return nil, fmt.Errorf("no winner to announce")
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeInvalidSettings:
		messages = []string{
			"Those settings won't make a fair game. Check names and impostor count.",
			"Something's off with the setup. Every player needs a unique name.",
		}
	case ErrorTypeUnknownPlayer:
		messages = []string{
			"Who? That name isn't in this game.",
			"Never heard of them. Pick someone who's actually playing.",
		}
	case ErrorTypeNotYourTurn:
		messages = []string{
			"Patience! It's not your turn yet.",
			"Hold on, someone else has the device.",
		}
	case ErrorTypeSelfVote:
		messages = []string{
			"Nice try. Vote for someone else.",
			"You can't point at yourself. Pick another player.",
		}
	case ErrorTypeSessionNotFound:
		messages = []string{
			"That game has vanished. Start a new one?",
			"Can't find that game. Maybe it expired.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again.",
			"Oops! Even the impostor didn't see that coming.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
