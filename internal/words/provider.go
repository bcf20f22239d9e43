package words

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_provider.go github.com/KirkDiggler/imposter/internal/words Provider

// Provider hands out the secret word for a round
type Provider interface {
	// PickWord returns a word pair from the given difficulty tier
	PickWord(difficulty models.Difficulty) models.WordPair
}

//go:embed catalog.json
var defaultCatalog []byte

// Config holds configuration for the catalog provider
type Config struct {
	// Random picks tiers and entries
	Random random.Source

	// Data overrides the embedded catalog (JSON object of tier -> pairs)
	Data []byte
}

// Catalog is a Provider backed by a static word list
type Catalog struct {
	random random.Source
	tiers  map[models.Difficulty][]models.WordPair
}

// New loads the catalog and validates that every tier has words
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	data := cfg.Data
	if data == nil {
		data = defaultCatalog
	}

	var tiers map[models.Difficulty][]models.WordPair
	if err := json.Unmarshal(data, &tiers); err != nil {
		return nil, fmt.Errorf("failed to parse word catalog: %w", err)
	}

	for _, tier := range models.Tiers() {
		if len(tiers[tier]) == 0 {
			return nil, fmt.Errorf("word catalog has no %s words", tier)
		}
	}

	return &Catalog{
		random: cfg.Random,
		tiers:  tiers,
	}, nil
}

// PickWord returns a random pair from the tier; DifficultyRandom or an unknown tier picks any tier
func (c *Catalog) PickWord(difficulty models.Difficulty) models.WordPair {
	pairs, ok := c.tiers[difficulty]
	if !ok || len(pairs) == 0 {
		tiers := models.Tiers()
		pairs = c.tiers[tiers[c.random.Intn(len(tiers))]]
	}
	return pairs[c.random.Intn(len(pairs))]
}

// Size returns how many pairs a tier holds
func (c *Catalog) Size(difficulty models.Difficulty) int {
	return len(c.tiers[difficulty])
}
