package terminal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/services/game"
	"github.com/KirkDiggler/imposter/internal/services/messaging"
)

type renderFunc func(ctx context.Context, out *game.SessionOutput) error

func (t *Terminal) registerRenderers() map[models.Phase]renderFunc {
	return map[models.Phase]renderFunc{
		models.PhaseSetup:          t.renderSetup,
		models.PhaseCardReveal:     t.renderCardReveal,
		models.PhaseRoundStarting:  t.renderRoundStarting,
		models.PhaseClueCollection: t.renderClueCollection,
		models.PhaseRoundDecision:  t.renderRoundDecision,
		models.PhaseVoting:         t.renderVoting,
		models.PhaseVotingResults:  t.renderVotingResults,
		models.PhaseLastChance:     t.renderLastChance,
		models.PhaseFinalResults:   t.renderFinalResults,
	}
}

// render draws the screen when something the players should see has changed
func (t *Terminal) render(ctx context.Context, out *game.SessionOutput) error {
	prev := t.current
	t.current = out
	if prev != nil && screenKey(prev) == screenKey(out) {
		return nil
	}

	renderer, ok := t.renderers[out.Session.Phase]
	if !ok {
		return fmt.Errorf("no screen for phase %q", out.Session.Phase)
	}

	if prev == nil || prev.Session.Phase != out.Session.Phase || announcesPlayer(out.Session.Phase) {
		msg, err := t.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
			Phase:       out.Session.Phase,
			RoundNumber: out.Session.CurrentRoundNumber,
			MaxRounds:   out.Session.Settings.MaxRounds,
			PlayerName:  activePlayer(out),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(t.out, "\n== %s ==\n", msg.Message)
	}
	return renderer(ctx, out)
}

// screenKey changes whenever the saved session changes
func screenKey(out *game.SessionOutput) string {
	b, err := json.Marshal(out.Session)
	if err != nil {
		return ""
	}
	return string(b)
}

func announcesPlayer(p models.Phase) bool {
	return p == models.PhaseClueCollection || p == models.PhaseVoting || p == models.PhaseLastChance
}

func activePlayer(out *game.SessionOutput) string {
	switch out.Session.Phase {
	case models.PhaseClueCollection:
		return out.CurrentPlayer
	case models.PhaseVoting:
		return out.CurrentVoter
	case models.PhaseLastChance:
		return out.LastChancePlayer
	}
	return ""
}

func (t *Terminal) renderSetup(_ context.Context, out *game.SessionOutput) error {
	s := out.Session.Settings
	fmt.Fprintf(t.out, "Players: %d  Impostors: %d (max %d)  Rounds: %d  Difficulty: %s\n",
		s.PlayerCount, s.ImposterCount, out.MaxImposters, s.MaxRounds, s.Difficulty)
	for i, name := range s.PlayerNames {
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(t.out, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintln(t.out, "Commands: players, name, imposters, rounds, difficulty, start")
	return nil
}

func (t *Terminal) renderCardReveal(_ context.Context, out *game.SessionOutput) error {
	for _, role := range out.Session.AssignedRoles {
		mark := " "
		if role.HasSeenCard {
			mark = "x"
		}
		fmt.Fprintf(t.out, "  [%s] %s\n", mark, role.PlayerName)
	}
	fmt.Fprintln(t.out, "Commands: reveal <name>, reroll, begin")
	return nil
}

func (t *Terminal) renderRoundStarting(_ context.Context, out *game.SessionOutput) error {
	fmt.Fprintf(t.out, "Starting in %s...\n", out.PhaseRemaining.Round(time.Second))
	return nil
}

func (t *Terminal) renderClueCollection(_ context.Context, out *game.SessionOutput) error {
	renderClues(t.out, out.Session.AllClues)
	fmt.Fprintf(t.out, "Round %d of %d. %s is up.\n", out.Session.CurrentRoundNumber, out.Session.Settings.MaxRounds, out.CurrentPlayer)
	fmt.Fprintln(t.out, "Commands: clue <text>, next, guess <name> <word>")
	return nil
}

func (t *Terminal) renderRoundDecision(_ context.Context, out *game.SessionOutput) error {
	renderClues(t.out, out.Session.AllClues)
	fmt.Fprintf(t.out, "Round %d of %d done.\n", out.Session.CurrentRoundNumber, out.Session.Settings.MaxRounds)
	fmt.Fprintln(t.out, "Commands: more, endvote, guess <name> <word>")
	return nil
}

func (t *Terminal) renderVoting(_ context.Context, out *game.SessionOutput) error {
	names := make([]string, 0, len(out.Session.AssignedRoles))
	for _, role := range out.Session.AssignedRoles {
		names = append(names, role.PlayerName)
	}
	fmt.Fprintf(t.out, "Suspects: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(t.out, "%s is voting.\n", out.CurrentVoter)
	fmt.Fprintln(t.out, "Commands: vote <name>, next, guess <name> <word>")
	return nil
}

func (t *Terminal) renderVotingResults(ctx context.Context, out *game.SessionOutput) error {
	outcome := out.Session.VotingOutcome
	if outcome == nil {
		return nil
	}

	for _, tally := range outcome.Tallies {
		fmt.Fprintf(t.out, "  %-12s %s\n", tally.PlayerName, strings.Repeat("#", tally.Votes))
	}

	msg, err := t.messaging.GetVotingResultMessage(ctx, &messaging.GetVotingResultMessageInput{
		EliminatedPlayer:     outcome.EliminatedPlayer,
		IsImposterEliminated: outcome.IsImposterEliminated,
		WasTie:               outcome.WasTie,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s %s\n", msg.Title, msg.Message)

	if out.PhaseRemaining > 0 {
		fmt.Fprintln(t.out, "The impostors get one last chance to name the word...")
		return nil
	}
	fmt.Fprintln(t.out, "Commands: results")
	return nil
}

func (t *Terminal) renderLastChance(_ context.Context, out *game.SessionOutput) error {
	fmt.Fprintf(t.out, "%s has %s to guess the word.\n", out.LastChancePlayer, out.LastChanceRemaining.Round(time.Second))
	fmt.Fprintln(t.out, "Commands: guess <word>, skip")
	return nil
}

func (t *Terminal) renderFinalResults(ctx context.Context, out *game.SessionOutput) error {
	s := out.Session
	var word string
	if s.GameWordPair != nil {
		word = s.GameWordPair.Word
	}

	msg, err := t.messaging.GetFinalResultMessage(ctx, &messaging.GetFinalResultMessageInput{
		Winner:    out.Winner,
		Imposters: s.Imposters(),
		Word:      word,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s %s\n", msg.Title, msg.Message)
	fmt.Fprintln(t.out, "Commands: again, reset, quit")
	return nil
}

func renderClues(w io.Writer, clues []models.PlayerClue) {
	round := 0
	for _, clue := range clues {
		if clue.RoundNumber != round {
			round = clue.RoundNumber
			fmt.Fprintf(w, " Round %d:\n", round)
		}
		fmt.Fprintf(w, "   %s: %s\n", clue.PlayerName, clue.Clue)
	}
}

func renderCard(w io.Writer, card models.Card) {
	if card.IsImposter {
		fmt.Fprintf(w, "%s, you are an IMPOSTOR. Your hint: %s\n", card.PlayerName, card.Text)
		return
	}
	fmt.Fprintf(w, "%s, the secret word is: %s\n", card.PlayerName, card.Text)
}
