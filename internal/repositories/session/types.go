package session

import "github.com/KirkDiggler/imposter/internal/models"

type SaveSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type GetActiveSessionsInput struct {
}

type GetActiveSessionsOutput struct {
	SessionIDs []string
}
