package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/imposter/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/imposter/internal/models"
)

// Repository defines the interface for game session persistence
type Repository interface {
	// SaveSession persists a session snapshot
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveSessions lists the IDs of sessions that have not reached final results
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)
}
