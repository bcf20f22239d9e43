package engine

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/imposter/internal/common/clock"
	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
	"github.com/KirkDiggler/imposter/internal/words"
)

// Config holds the collaborators of a Session
type Config struct {
	// ID is stamped on newly created sessions
	ID string

	// Settings are the defaults a new or fully reset session starts from.
	// Zero value means models.DefaultSettings().
	Settings *models.Settings

	Words  words.Provider
	Random random.Source
	Clock  clock.Clock

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Session is the game progression engine for one pass-and-play game.
//
// Every operation either applies completely or, when its guard does not hold,
// leaves the session untouched. Callers observe effects by reading state afterwards.
// A Session is not safe for concurrent use.
type Session struct {
	state    *models.GameSession
	defaults models.Settings

	words  words.Provider
	random random.Source
	clock  clock.Clock
	log    *slog.Logger
}

// New creates a session in the setup phase
func New(cfg *Config) (*Session, error) {
	s, err := build(cfg)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	s.state = &models.GameSession{
		ID:        cfg.ID,
		Settings:  s.defaults.Clone(),
		Phase:     models.PhaseSetup,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s, nil
}

// Restore wraps a previously saved snapshot; the snapshot is copied, not aliased
func Restore(cfg *Config, state *models.GameSession) (*Session, error) {
	if state == nil {
		return nil, ErrNilState
	}
	if !state.Phase.IsValid() {
		return nil, ErrInvalidPhase
	}

	s, err := build(cfg)
	if err != nil {
		return nil, err
	}
	s.state = state.Clone()
	return s, nil
}

func build(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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

	defaults := models.DefaultSettings()
	if cfg.Settings != nil {
		defaults = cfg.Settings.Clone()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		defaults: defaults,
		words:    cfg.Words,
		random:   cfg.Random,
		clock:    cfg.Clock,
		log:      logger.With("component", "engine"),
	}, nil
}

// State returns a deep copy of the session for rendering or persistence
func (s *Session) State() *models.GameSession {
	return s.state.Clone()
}

// Phase returns the current phase
func (s *Session) Phase() models.Phase {
	return s.state.Phase
}

// RoundNumber returns the 1-based round number, 0 before rounds start
func (s *Session) RoundNumber() int {
	return s.state.CurrentRoundNumber
}

// CurrentPlayer returns whose turn it is to give a clue
func (s *Session) CurrentPlayer() string {
	return s.state.CurrentRound.CurrentPlayer()
}

// CurrentVoter returns who votes next
func (s *Session) CurrentVoter() string {
	return s.state.VotingState.CurrentVoter()
}

// IsPlayerImposter reports whether name holds an impostor role in the current assignment
func (s *Session) IsPlayerImposter(name string) bool {
	role, ok := s.state.Role(name)
	return ok && role.IsImposter
}

// CardFor returns what name should see on their card.
// Impostors only ever get the hint and everyone else only the word.
func (s *Session) CardFor(name string) (models.Card, bool) {
	role, ok := s.state.Role(name)
	if !ok {
		return models.Card{}, false
	}
	pair := s.liveWordPair()
	if pair == nil {
		return models.Card{}, false
	}

	card := models.Card{PlayerName: name, IsImposter: role.IsImposter, Text: pair.Word}
	if role.IsImposter {
		card.Text = pair.ImposterHint
	}
	return card, true
}

// AllCardsSeen reports whether every assigned player has looked at their card
func (s *Session) AllCardsSeen() bool {
	if len(s.state.AssignedRoles) == 0 {
		return false
	}
	for _, r := range s.state.AssignedRoles {
		if !r.HasSeenCard {
			return false
		}
	}
	return true
}

// liveWordPair is the round's word once rounds started, the preview before that
func (s *Session) liveWordPair() *models.WordPair {
	if s.state.GameWordPair != nil {
		return s.state.GameWordPair
	}
	return s.state.CurrentWordPair
}

// playerNames returns the configured names in seating order
func (s *Session) playerNames() []string {
	names := s.state.Settings.PlayerNames
	n := s.state.Settings.PlayerCount
	if n > len(names) {
		n = len(names)
	}
	if n < 0 {
		n = 0
	}
	return append([]string(nil), names[:n]...)
}

// rolledNames returns the names of the current assignment in role-list order
func (s *Session) rolledNames() []string {
	out := make([]string, 0, len(s.state.AssignedRoles))
	for _, r := range s.state.AssignedRoles {
		out = append(out, r.PlayerName)
	}
	return out
}

func (s *Session) pickWord() *models.WordPair {
	pair := s.words.PickWord(s.state.Settings.Difficulty)
	return &pair
}

func (s *Session) setPhase(p models.Phase) {
	if s.state.Phase != p {
		s.log.Debug("phase changed", "session_id", s.state.ID, "from", s.state.Phase, "to", p)
	}
	s.state.Phase = p
	s.state.PhaseDeadline = time.Time{}
}

func (s *Session) deadlineAfter(d time.Duration) time.Time {
	return s.clock.Now().Add(d)
}

func (s *Session) touch() {
	s.state.UpdatedAt = s.clock.Now()
}

func (s *Session) ignore(op, reason string) {
	s.log.Debug("operation ignored", "session_id", s.state.ID, "op", op, "phase", s.state.Phase, "reason", reason)
}
