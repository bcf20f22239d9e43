package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/imposter/internal/common/clock"
	"github.com/KirkDiggler/imposter/internal/common/uuid"
	"github.com/KirkDiggler/imposter/internal/engine"
	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
	sessionRepo "github.com/KirkDiggler/imposter/internal/repositories/session"
	"github.com/KirkDiggler/imposter/internal/words"
)

// service implements the Service interface
type service struct {
	defaults      models.Settings
	sessionRepo   sessionRepo.Repository
	words         words.Provider
	random        random.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
	log           *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Words == nil {
		return nil, ErrNilWordProvider
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	defaults := models.DefaultSettings()
	if cfg.Defaults != nil {
		defaults = cfg.Defaults.Clone()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		defaults:      defaults,
		sessionRepo:   cfg.SessionRepo,
		words:         cfg.Words,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
		log:           logger.With("component", "game_service"),
	}, nil
}

// CreateSession starts a new session in setup and saves it
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	cfg := s.engineConfig()
	cfg.ID = s.uuidGenerator.NewUUID()
	if input.Settings != nil {
		settings := input.Settings.Clone()
		cfg.Settings = &settings
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}

	s.log.Info("session created", "session_id", cfg.ID)
	return s.output(eng), nil
}

// GetSession loads a session, applying any time-driven transition that is due
func (s *service) GetSession(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, func(*engine.Session) {})
}

// ListActiveSessions returns sessions that have not finished
func (s *service) ListActiveSessions(ctx context.Context, _ *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	out, err := s.sessionRepo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return &ListActiveSessionsOutput{SessionIDs: out.SessionIDs}, nil
}

// DeleteSession discards a session
func (s *service) DeleteSession(ctx context.Context, input *SessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: input.SessionID})
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UpdateSettings validates and applies setup changes in one step
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	if input.PlayerCount != nil && (*input.PlayerCount < models.MinPlayers || *input.PlayerCount > models.MaxPlayers) {
		return nil, fmt.Errorf("%w: player count must be between %d and %d", ErrInvalidSettings, models.MinPlayers, models.MaxPlayers)
	}
	if input.ImposterCount != nil && *input.ImposterCount < 1 {
		return nil, fmt.Errorf("%w: at least one impostor is required", ErrInvalidSettings)
	}
	if input.MaxRounds != nil && *input.MaxRounds < 1 {
		return nil, fmt.Errorf("%w: at least one round is required", ErrInvalidSettings)
	}
	if input.Difficulty != nil && !input.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidSettings, *input.Difficulty)
	}

	return s.mutate(ctx, &SessionInput{SessionID: input.SessionID}, func(eng *engine.Session) {
		if input.PlayerCount != nil {
			eng.SetOfflinePlayerCount(*input.PlayerCount)
		}
		for i, name := range input.PlayerNames {
			eng.SetOfflinePlayerName(i, strings.TrimSpace(name))
		}
		if input.ImposterCount != nil {
			eng.SetOfflineImposterCount(*input.ImposterCount)
		}
		if input.MaxRounds != nil {
			eng.SetMaxRounds(*input.MaxRounds)
		}
		if input.Difficulty != nil {
			eng.SetWordDifficulty(*input.Difficulty)
		}
		if input.GameMode != nil {
			eng.SetGameMode(*input.GameMode)
		}
	})
}

// StartGame deals the cards once the settings describe a playable game
func (s *service) StartGame(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	eng, err := s.load(ctx, input)
	if err != nil {
		return nil, err
	}

	state := eng.State()
	if state.Phase == models.PhaseSetup {
		if err := ValidateSettings(state.Settings); err != nil {
			return nil, err
		}
	}

	eng.StartOfflineGame()
	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}
	return s.output(eng), nil
}

// RerollWord draws a new preview word and new roles
func (s *service) RerollWord(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).GenerateNewWordPair)
}

// RevealCard returns what the named player should see and marks their card seen
func (s *service) RevealCard(ctx context.Context, input *RevealCardInput) (*RevealCardOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	eng, err := s.load(ctx, &SessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	card, ok := eng.CardFor(input.PlayerName)
	if !ok {
		return nil, fmt.Errorf("%w: no card for %q", ErrInvalidInput, input.PlayerName)
	}

	eng.MarkCardSeen(input.PlayerName)
	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}

	return &RevealCardOutput{
		Card:         card,
		AllCardsSeen: eng.AllCardsSeen(),
	}, nil
}

// StartRounds begins round one
func (s *service) StartRounds(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).StartGameRounds)
}

// SubmitClue records the current player's clue
func (s *service) SubmitClue(ctx context.Context, input *SubmitClueInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.mutate(ctx, &SessionInput{SessionID: input.SessionID}, func(eng *engine.Session) {
		eng.SubmitPlayerClue(input.Clue)
	})
}

// NextPlayer passes the turn on
func (s *service) NextPlayer(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).NextPlayer)
}

// ContinueRound plays another round
func (s *service) ContinueRound(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).ContinueToNextRound)
}

// EndAndVote skips the remaining rounds
func (s *service) EndAndVote(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).EndGameAndVote)
}

// SubmitVote records the current voter's pick; the target must be another player in the game
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	eng, err := s.load(ctx, &SessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	target := strings.TrimSpace(input.Target)
	if _, ok := eng.State().Role(target); !ok {
		return nil, fmt.Errorf("%w: %q is not playing", ErrInvalidInput, target)
	}
	if voter := eng.CurrentVoter(); voter != "" && target == voter {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, voter, ErrSelfVote)
	}

	eng.SubmitVote(target)
	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}
	return s.output(eng), nil
}

// NextVoter passes the vote on
func (s *service) NextVoter(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).NextVoter)
}

// GuessWord is an impostor's in-round attempt
func (s *service) GuessWord(ctx context.Context, input *GuessWordInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.mutate(ctx, &SessionInput{SessionID: input.SessionID}, func(eng *engine.Session) {
		eng.GuessWord(input.PlayerName, input.Guess)
	})
}

// GuessWordInLastChance is the current last-chance impostor's attempt
func (s *service) GuessWordInLastChance(ctx context.Context, input *GuessWordInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.mutate(ctx, &SessionInput{SessionID: input.SessionID}, func(eng *engine.Session) {
		eng.GuessWordInLastChance(input.PlayerName, input.Guess)
	})
}

// SkipLastChance passes on the current impostor's last chance
func (s *service) SkipLastChance(ctx context.Context, input *SkipLastChanceInput) (*SessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	return s.mutate(ctx, &SessionInput{SessionID: input.SessionID}, func(eng *engine.Session) {
		eng.SkipLastChance(input.PlayerName)
	})
}

// ShowFinalResults leaves the voting results
func (s *service) ShowFinalResults(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).ShowFinalResults)
}

// ResetSettings discards the game and all settings. The session returns to the
// service-wide defaults, not to the settings it was created with.
func (s *service) ResetSettings(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).ResetOfflineSettings)
}

// ResetKeepPlayers starts over with the same players
func (s *service) ResetKeepPlayers(ctx context.Context, input *SessionInput) (*SessionOutput, error) {
	return s.mutate(ctx, input, (*engine.Session).ResetGameKeepPlayers)
}

// ValidateSettings reports why settings cannot start a game, or nil when they can
func ValidateSettings(settings models.Settings) error {
	if settings.PlayerCount < models.MinPlayers || settings.PlayerCount > models.MaxPlayers {
		return fmt.Errorf("%w: player count must be between %d and %d", ErrInvalidSettings, models.MinPlayers, models.MaxPlayers)
	}
	if len(settings.PlayerNames) < settings.PlayerCount {
		return fmt.Errorf("%w: %d players need names", ErrInvalidSettings, settings.PlayerCount)
	}

	seen := make(map[string]bool, settings.PlayerCount)
	for i, name := range settings.PlayerNames[:settings.PlayerCount] {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidSettings, i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: name %q is used twice", ErrInvalidSettings, name)
		}
		seen[key] = true
	}

	if limit := engine.MaxImpostersFor(settings.PlayerCount); settings.ImposterCount < 1 || settings.ImposterCount > limit {
		return fmt.Errorf("%w: %d players allow 1 to %d impostors", ErrInvalidSettings, settings.PlayerCount, limit)
	}
	if settings.MaxRounds < 1 {
		return fmt.Errorf("%w: at least one round is required", ErrInvalidSettings)
	}
	return nil
}

// mutate loads a session, applies due deadlines and op, then saves the result
func (s *service) mutate(ctx context.Context, input *SessionInput, op func(*engine.Session)) (*SessionOutput, error) {
	eng, err := s.load(ctx, input)
	if err != nil {
		return nil, err
	}

	op(eng)

	if err := s.save(ctx, eng); err != nil {
		return nil, err
	}
	return s.output(eng), nil
}

// load restores the engine for a saved session and applies any due deadline
func (s *service) load(ctx context.Context, input *SessionInput) (*engine.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	state, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: input.SessionID})
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	eng, err := engine.Restore(s.engineConfig(), state)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", input.SessionID, err)
	}

	eng.Tick()
	return eng, nil
}

func (s *service) save(ctx context.Context, eng *engine.Session) error {
	state := eng.State()
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: state}); err != nil {
		s.log.Error("failed to save session", "session_id", state.ID, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *service) engineConfig() *engine.Config {
	defaults := s.defaults.Clone()
	return &engine.Config{
		Settings: &defaults,
		Words:    s.words,
		Random:   s.random,
		Clock:    s.clock,
		Logger:   s.logger,
	}
}

func (s *service) output(eng *engine.Session) *SessionOutput {
	state := eng.State()
	return &SessionOutput{
		Session:             state,
		CurrentPlayer:       eng.CurrentPlayer(),
		CurrentVoter:        eng.CurrentVoter(),
		LastChancePlayer:    eng.LastChancePlayer(),
		LastChanceRemaining: eng.LastChanceRemaining(),
		PhaseRemaining:      clock.Remaining(s.clock, state.PhaseDeadline),
		MaxImposters:        engine.MaxImpostersFor(state.Settings.PlayerCount),
		Winner:              eng.Winner(),
	}
}
