package engine

import (
	"github.com/KirkDiggler/imposter/internal/models"
)

// SetOfflinePlayerCount resizes the seat list, keeping names already typed in
func (s *Session) SetOfflinePlayerCount(n int) {
	if s.state.Phase != models.PhaseSetup {
		s.ignore("set_player_count", "not in setup")
		return
	}
	if n < 0 {
		s.ignore("set_player_count", "negative count")
		return
	}

	names := make([]string, n)
	copy(names, s.state.Settings.PlayerNames)
	s.state.Settings.PlayerNames = names
	s.state.Settings.PlayerCount = n
	s.touch()
}

// SetOfflineImposterCount sets how many impostors the next deal draws
func (s *Session) SetOfflineImposterCount(n int) {
	if s.state.Phase != models.PhaseSetup {
		s.ignore("set_imposter_count", "not in setup")
		return
	}
	if n < 0 {
		s.ignore("set_imposter_count", "negative count")
		return
	}
	s.state.Settings.ImposterCount = n
	s.touch()
}

// SetOfflinePlayerName names seat i
func (s *Session) SetOfflinePlayerName(i int, name string) {
	if s.state.Phase != models.PhaseSetup {
		s.ignore("set_player_name", "not in setup")
		return
	}
	if i < 0 || i >= len(s.state.Settings.PlayerNames) {
		s.ignore("set_player_name", "seat out of range")
		return
	}
	s.state.Settings.PlayerNames[i] = name
	s.touch()
}

// SetMaxRounds sets how many clue rounds are played before voting is forced
func (s *Session) SetMaxRounds(n int) {
	if s.state.Phase != models.PhaseSetup || n < 1 {
		s.ignore("set_max_rounds", "not in setup or below one")
		return
	}
	s.state.Settings.MaxRounds = n
	s.touch()
}

// SetWordDifficulty picks the tier future words are drawn from
func (s *Session) SetWordDifficulty(d models.Difficulty) {
	if s.state.Phase != models.PhaseSetup || !d.IsValid() {
		s.ignore("set_word_difficulty", "not in setup or unknown difficulty")
		return
	}
	s.state.Settings.Difficulty = d
	s.touch()
}

// SetGameMode records the chosen mode; only offline play is driven by this engine
func (s *Session) SetGameMode(m models.GameMode) {
	if s.state.Phase != models.PhaseSetup {
		s.ignore("set_game_mode", "not in setup")
		return
	}
	s.state.Settings.GameMode = m
	s.touch()
}

// StartOfflineGame deals roles and a preview word and moves to card reveal
func (s *Session) StartOfflineGame() {
	if s.state.Phase != models.PhaseSetup {
		s.ignore("start_offline_game", "not in setup")
		return
	}
	s.deal(s.playerNames())
	s.log.Info("game started", "session_id", s.state.ID,
		"players", len(s.state.AssignedRoles), "imposters", s.state.Settings.ImposterCount)
}

// GenerateNewWordPair re-rolls the preview word and the roles before rounds start,
// discarding any clues or guess state left over from the unstarted game.
func (s *Session) GenerateNewWordPair() {
	if !s.state.Phase.IsPreRound() {
		s.ignore("generate_new_word_pair", "rounds already started")
		return
	}

	names := s.rolledNames()
	if len(names) == 0 {
		names = s.playerNames()
	}
	s.state.CurrentWordPair = s.pickWord()
	s.state.AssignedRoles = AssignRoles(s.random, names, s.state.Settings.ImposterCount)
	s.state.AllClues = nil
	s.clearGuessState()
	s.touch()
}

// MarkCardSeen flags that name has looked at their card
func (s *Session) MarkCardSeen(name string) {
	for i := range s.state.AssignedRoles {
		if s.state.AssignedRoles[i].PlayerName == name {
			s.state.AssignedRoles[i].HasSeenCard = true
			s.touch()
			return
		}
	}
	s.ignore("mark_card_seen", "unknown player")
}

// StartGameRounds locks in the preview word and begins round one
func (s *Session) StartGameRounds() {
	if s.state.Phase != models.PhaseCardReveal || s.state.CurrentWordPair == nil {
		s.ignore("start_game_rounds", "not in card reveal")
		return
	}

	live := *s.state.CurrentWordPair
	s.state.GameWordPair = &live
	s.state.CurrentRoundNumber = 1
	s.state.CurrentRound = s.startRound(s.rolledNames())
	s.state.VotingState = nil
	s.state.VotingOutcome = nil
	s.enterRoundStarting()
}

// ResetOfflineSettings discards the game and every setting, back to setup
func (s *Session) ResetOfflineSettings() {
	s.state = &models.GameSession{
		ID:        s.state.ID,
		Settings:  s.defaults.Clone(),
		Phase:     models.PhaseSetup,
		CreatedAt: s.state.CreatedAt,
	}
	s.touch()
	s.log.Debug("settings reset", "session_id", s.state.ID)
}

// ResetGameKeepPlayers starts a new game with the same names and settings
func (s *Session) ResetGameKeepPlayers() {
	if s.state.Phase == models.PhaseSetup {
		s.ignore("reset_game_keep_players", "no game to reset")
		return
	}
	s.deal(s.playerNames())
}

// deal assigns roles, rolls a preview word and clears all game progress
func (s *Session) deal(names []string) {
	s.state.AssignedRoles = AssignRoles(s.random, names, s.state.Settings.ImposterCount)
	s.state.CurrentWordPair = s.pickWord()
	s.state.GameWordPair = nil
	s.state.CurrentRoundNumber = 0
	s.state.AllClues = nil
	s.state.CurrentRound = nil
	s.state.VotingState = nil
	s.state.VotingOutcome = nil
	s.clearGuessState()
	s.setPhase(models.PhaseCardReveal)
	s.touch()
}

func (s *Session) clearGuessState() {
	s.state.WordGuessResult = nil
	s.state.WordGuessAttempted = false
	s.state.WordGuessingDisabled = false
	s.state.LastChance = nil
}
