package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/imposter/internal/random Source

// Source is the randomness used for role draws, turn order and word picks
type Source interface {
	// Perm returns a random permutation of [0, n)
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))

	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Roller provides the default Source
type Roller struct {
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for testing and replays
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Perm returns a random permutation of [0, n)
func (r *Roller) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return r.random.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements
func (r *Roller) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.random.Shuffle(n, swap)
}

// Intn returns a random int in [0, n); n below 1 yields 0
func (r *Roller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// ShuffledCopy returns names reordered by src, leaving the input untouched.
func ShuffledCopy(src Source, names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
