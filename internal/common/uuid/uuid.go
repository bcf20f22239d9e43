package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/imposter/internal/common/uuid UUID

// UUID generates identifiers for persisted game sessions
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues time-ordered (v7) IDs so sorted session listings follow creation order
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new v7 UUID, falling back to a random v4 if the clock read fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
