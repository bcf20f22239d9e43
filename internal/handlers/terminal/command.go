package terminal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/services/game"
	"github.com/KirkDiggler/imposter/internal/services/messaging"
)

var errUsage = errors.New("usage")

// CommandHandler is one console command
type CommandHandler struct {
	Name        string
	Usage       string
	Description string
	Handle      func(ctx context.Context, args []string) error
}

func (t *Terminal) registerCommands() map[string]CommandHandler {
	cmds := []CommandHandler{
		{Name: "help", Description: "list commands", Handle: t.handleHelp},
		{Name: "quit", Description: "save and leave", Handle: t.handleQuit},
		{Name: "players", Usage: "<count>", Description: "set the number of players", Handle: t.handlePlayers},
		{Name: "name", Usage: "<seat> <name>", Description: "name a seat (1-based)", Handle: t.handleName},
		{Name: "imposters", Usage: "<count>", Description: "set the number of impostors", Handle: t.handleImposters},
		{Name: "rounds", Usage: "<count>", Description: "set the maximum number of clue rounds", Handle: t.handleRounds},
		{Name: "difficulty", Usage: "<easy|medium|hard|random>", Description: "pick the word tier", Handle: t.handleDifficulty},
		{Name: "start", Description: "deal the cards", Handle: t.simple(t.gameService.StartGame)},
		{Name: "reveal", Usage: "<name>", Description: "show a player their card", Handle: t.handleReveal},
		{Name: "reroll", Description: "draw a new word and new roles", Handle: t.simple(t.gameService.RerollWord)},
		{Name: "begin", Description: "start the first round", Handle: t.simple(t.gameService.StartRounds)},
		{Name: "clue", Usage: "<text>", Description: "give your clue", Handle: t.handleClue},
		{Name: "next", Description: "pass the device to the next player", Handle: t.handleNext},
		{Name: "more", Description: "play another round", Handle: t.simple(t.gameService.ContinueRound)},
		{Name: "endvote", Description: "stop the rounds and vote", Handle: t.simple(t.gameService.EndAndVote)},
		{Name: "vote", Usage: "<name>", Description: "vote for a suspect", Handle: t.handleVote},
		{Name: "guess", Usage: "<name> <word> | <word> in the last chance", Description: "an impostor guesses the word", Handle: t.handleGuess},
		{Name: "skip", Description: "give up the last chance", Handle: t.handleSkip},
		{Name: "results", Description: "show the final results", Handle: t.simple(t.gameService.ShowFinalResults)},
		{Name: "again", Description: "new game with the same players", Handle: t.simple(t.gameService.ResetKeepPlayers)},
		{Name: "reset", Description: "start over from setup", Handle: t.simple(t.gameService.ResetSettings)},
	}

	registry := make(map[string]CommandHandler, len(cmds))
	for _, cmd := range cmds {
		registry[cmd.Name] = cmd
	}
	return registry
}

// simple adapts a service call that only needs the session ID
func (t *Terminal) simple(call func(context.Context, *game.SessionInput) (*game.SessionOutput, error)) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error {
		_, err := call(ctx, &game.SessionInput{SessionID: t.sessionID})
		return err
	}
}

func (t *Terminal) handleHelp(context.Context, []string) error {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := t.commands[name]
		fmt.Fprintf(t.out, "  %-10s %-12s %s\n", cmd.Name, cmd.Usage, cmd.Description)
	}
	return nil
}

func (t *Terminal) handleQuit(context.Context, []string) error {
	t.quit = true
	return nil
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errUsage
	}
	return n, nil
}

func (t *Terminal) updateSettings(ctx context.Context, input *game.UpdateSettingsInput) error {
	input.SessionID = t.sessionID
	_, err := t.gameService.UpdateSettings(ctx, input)
	return err
}

func (t *Terminal) handlePlayers(ctx context.Context, args []string) error {
	n, err := intArg(args)
	if err != nil {
		return err
	}
	return t.updateSettings(ctx, &game.UpdateSettingsInput{PlayerCount: &n})
}

func (t *Terminal) handleName(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	seat, err := strconv.Atoi(args[0])
	if err != nil || t.current == nil {
		return errUsage
	}

	names := append([]string(nil), t.current.Session.Settings.PlayerNames...)
	if seat < 1 || seat > len(names) {
		return fmt.Errorf("%w: seat %d does not exist", game.ErrInvalidSettings, seat)
	}
	names[seat-1] = strings.Join(args[1:], " ")
	return t.updateSettings(ctx, &game.UpdateSettingsInput{PlayerNames: names})
}

func (t *Terminal) handleImposters(ctx context.Context, args []string) error {
	n, err := intArg(args)
	if err != nil {
		return err
	}
	return t.updateSettings(ctx, &game.UpdateSettingsInput{ImposterCount: &n})
}

func (t *Terminal) handleRounds(ctx context.Context, args []string) error {
	n, err := intArg(args)
	if err != nil {
		return err
	}
	return t.updateSettings(ctx, &game.UpdateSettingsInput{MaxRounds: &n})
}

func (t *Terminal) handleDifficulty(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	d := models.Difficulty(strings.ToLower(args[0]))
	return t.updateSettings(ctx, &game.UpdateSettingsInput{Difficulty: &d})
}

func (t *Terminal) handleReveal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	out, err := t.gameService.RevealCard(ctx, &game.RevealCardInput{
		SessionID:  t.sessionID,
		PlayerName: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}

	renderCard(t.out, out.Card)
	fmt.Fprint(t.out, "Press enter to hide your card.")
	t.readLine()
	fmt.Fprint(t.out, strings.Repeat("\n", 40))

	if out.AllCardsSeen {
		fmt.Fprintln(t.out, "Everyone has seen their card. Type 'begin' when ready.")
	}
	return nil
}

func (t *Terminal) handleClue(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	_, err := t.gameService.SubmitClue(ctx, &game.SubmitClueInput{
		SessionID: t.sessionID,
		Clue:      strings.Join(args, " "),
	})
	return err
}

// handleNext passes the turn during clues and the vote during voting
func (t *Terminal) handleNext(ctx context.Context, _ []string) error {
	input := &game.SessionInput{SessionID: t.sessionID}
	if t.current != nil && t.current.Session.Phase == models.PhaseVoting {
		_, err := t.gameService.NextVoter(ctx, input)
		return err
	}
	_, err := t.gameService.NextPlayer(ctx, input)
	return err
}

func (t *Terminal) handleVote(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	_, err := t.gameService.SubmitVote(ctx, &game.SubmitVoteInput{
		SessionID: t.sessionID,
		Target:    strings.Join(args, " "),
	})
	return err
}

func (t *Terminal) handleGuess(ctx context.Context, args []string) error {
	var (
		out *game.SessionOutput
		err error
	)

	if t.current != nil && t.current.Session.Phase == models.PhaseLastChance {
		if len(args) == 0 {
			return errUsage
		}
		out, err = t.gameService.GuessWordInLastChance(ctx, &game.GuessWordInput{
			SessionID:  t.sessionID,
			PlayerName: t.current.LastChancePlayer,
			Guess:      strings.Join(args, " "),
		})
	} else {
		if len(args) < 2 {
			return errUsage
		}
		out, err = t.gameService.GuessWord(ctx, &game.GuessWordInput{
			SessionID:  t.sessionID,
			PlayerName: args[0],
			Guess:      strings.Join(args[1:], " "),
		})
	}
	if err != nil {
		return err
	}

	result := out.Session.WordGuessResult
	if result == nil {
		fmt.Fprintln(t.out, "That guess was not accepted.")
		return nil
	}
	msg, err := t.messaging.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		PlayerName:   result.GuessedBy,
		IsWin:        result.IsWin,
		IsLastChance: result.IsLastChance,
		TargetWord:   result.TargetWord,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s %s\n", msg.Title, msg.Message)
	return nil
}

func (t *Terminal) handleSkip(ctx context.Context, _ []string) error {
	if t.current == nil {
		return nil
	}
	_, err := t.gameService.SkipLastChance(ctx, &game.SkipLastChanceInput{
		SessionID:  t.sessionID,
		PlayerName: t.current.LastChancePlayer,
	})
	return err
}
