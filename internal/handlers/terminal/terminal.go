package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/services/game"
	"github.com/KirkDiggler/imposter/internal/services/messaging"
)

// Terminal runs a pass-and-play game over a line-based console
type Terminal struct {
	in          *bufio.Scanner
	out         io.Writer
	gameService game.Service
	messaging   messaging.Service
	sessionID   string
	wait        func(ctx context.Context, d time.Duration) error
	log         *slog.Logger

	commands  map[string]CommandHandler
	renderers map[models.Phase]renderFunc

	// current is the session as last rendered
	current *game.SessionOutput
	quit    bool
}

// Config holds the configuration for the terminal front end
type Config struct {
	In  io.Reader
	Out io.Writer

	GameService game.Service
	Messaging   messaging.Service

	// SessionID resumes a saved session; empty starts a new one
	SessionID string

	// Wait blocks for d or until ctx is done; defaults to a timer
	Wait func(ctx context.Context, d time.Duration) error

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// New creates a new terminal front end
func New(cfg *Config) (*Terminal, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	wait := cfg.Wait
	if wait == nil {
		wait = sleep
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	t := &Terminal{
		in:          bufio.NewScanner(cfg.In),
		out:         cfg.Out,
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		sessionID:   cfg.SessionID,
		wait:        wait,
		log:         logger.With("component", "terminal"),
	}
	t.commands = t.registerCommands()
	t.renderers = t.registerRenderers()
	return t, nil
}

// SessionID returns the session being played, once Run has opened it
func (t *Terminal) SessionID() string {
	return t.sessionID
}

// Run plays until the input ends, the player quits or ctx is cancelled
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.open(ctx); err != nil {
		return err
	}

	for !t.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := t.gameService.GetSession(ctx, &game.SessionInput{SessionID: t.sessionID})
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if err := t.render(ctx, out); err != nil {
			return err
		}

		if d := pendingWait(out); d > 0 {
			if err := t.wait(ctx, d); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(t.out, "> ")
		line, ok := t.readLine()
		if !ok {
			fmt.Fprintln(t.out)
			return nil
		}
		if err := t.dispatch(ctx, line); err != nil {
			return err
		}
	}

	fmt.Fprintf(t.out, "Session %s saved. Bye!\n", t.sessionID)
	return nil
}

func (t *Terminal) open(ctx context.Context) error {
	if t.sessionID != "" {
		fmt.Fprintf(t.out, "Resuming session %s\n", t.sessionID)
		return nil
	}

	out, err := t.gameService.CreateSession(ctx, &game.CreateSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	t.sessionID = out.Session.ID
	t.log.Info("session opened", "session_id", t.sessionID)
	fmt.Fprintf(t.out, "New session %s. Type 'help' for commands.\n", t.sessionID)
	return nil
}

// dispatch runs one command line; mistakes the players can fix are printed, not returned
func (t *Terminal) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := t.commands[name]
	if !ok {
		fmt.Fprintf(t.out, "Unknown command %q. Type 'help'.\n", name)
		return nil
	}

	err := cmd.Handle(ctx, fields[1:])
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errUsage):
		fmt.Fprintf(t.out, "Usage: %s %s\n", cmd.Name, cmd.Usage)
		return nil
	case errors.Is(err, game.ErrInvalidSettings):
		return t.explain(ctx, messaging.ErrorTypeInvalidSettings, err)
	case errors.Is(err, game.ErrSelfVote):
		return t.explain(ctx, messaging.ErrorTypeSelfVote, err)
	case errors.Is(err, game.ErrInvalidInput):
		return t.explain(ctx, messaging.ErrorTypeUnknownPlayer, err)
	case errors.Is(err, game.ErrSessionNotFound):
		_ = t.explain(ctx, messaging.ErrorTypeSessionNotFound, err)
		return err
	}
	return err
}

func (t *Terminal) explain(ctx context.Context, errorType string, cause error) error {
	msg, err := t.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "%s (%v)\n", msg.Message, cause)
	return nil
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

// pendingWait is how long to hold before the next time-driven transition
func pendingWait(out *game.SessionOutput) time.Duration {
	switch out.Session.Phase {
	case models.PhaseRoundStarting, models.PhaseVotingResults:
		return out.PhaseRemaining
	}
	return 0
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
