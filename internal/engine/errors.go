package engine

// EngineError is returned only while constructing a Session; game operations never fail
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       EngineError = "config cannot be nil"
	ErrNilWordProvider EngineError = "word provider cannot be nil"
	ErrNilRandom       EngineError = "random source cannot be nil"
	ErrNilClock        EngineError = "clock cannot be nil"
	ErrNilState        EngineError = "session state cannot be nil"
	ErrInvalidPhase    EngineError = "session state has an unknown phase"
)
