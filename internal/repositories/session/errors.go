package session

// RepositoryError is a typed error for session persistence
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	ErrSessionNotFound RepositoryError = "session not found"
	ErrNilConfig       RepositoryError = "config cannot be nil"
	ErrNilRedisClient  RepositoryError = "redis client cannot be nil"
	ErrInvalidInput    RepositoryError = "input and session ID cannot be empty"
)
