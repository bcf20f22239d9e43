package session

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/imposter/internal/models"
)

// memoryRepository keeps snapshots in process memory; used when no Redis is configured
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.GameSession
}

// NewMemory creates an in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.GameSession),
	}
}

// SaveSession stores a copy of the snapshot
func (r *memoryRepository) SaveSession(_ context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil || input.Session.ID == "" {
		return ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[input.Session.ID] = input.Session.Clone()
	return nil
}

// GetSession returns a copy of the stored snapshot
func (r *memoryRepository) GetSession(_ context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// DeleteSession removes a stored snapshot
func (r *memoryRepository) DeleteSession(_ context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, input.SessionID)
	return nil
}

// GetActiveSessions lists sessions not yet in final results, sorted by ID
func (r *memoryRepository) GetActiveSessions(_ context.Context, _ *GetActiveSessionsInput) (*GetActiveSessionsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	output := &GetActiveSessionsOutput{SessionIDs: []string{}}
	for id, session := range r.sessions {
		if session.Phase != models.PhaseFinalResults {
			output.SessionIDs = append(output.SessionIDs, id)
		}
	}
	sort.Strings(output.SessionIDs)
	return output, nil
}
