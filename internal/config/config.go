package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/imposter/internal/models"
)

// Config describes the runtime settings of the terminal game.
// It is loaded once in main and handed to constructors.
type Config struct {
	Env string // dev|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Redis struct {
		// Addr empty keeps sessions in memory
		Addr       string
		Password   string
		DB         int
		SessionTTL time.Duration
	}

	Game struct {
		// RandomSeed of zero seeds from the clock
		RandomSeed       int64
		MaxRounds        int
		Difficulty       models.Difficulty
		StartDelay       time.Duration
		ResultsDelay     time.Duration
		LastChanceWindow time.Duration
	}
}

// LoadFromEnv reads the environment (after any .env file was applied) and validates it
func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "info")

	c.Redis.Addr = envString("REDIS_ADDR", "")
	c.Redis.Password = envString("REDIS_PASSWORD", "")
	c.Redis.DB = envInt("REDIS_DB", 0)
	c.Redis.SessionTTL = envDuration("SESSION_TTL", 24*time.Hour)

	c.Game.RandomSeed = int64(envInt("RANDOM_SEED", 0))
	c.Game.MaxRounds = envInt("MAX_ROUNDS", models.DefaultMaxRounds)
	c.Game.Difficulty = models.Difficulty(envString("WORD_DIFFICULTY", string(models.DifficultyRandom)))
	c.Game.StartDelay = envDuration("START_DELAY", models.DefaultStartDelay)
	c.Game.ResultsDelay = envDuration("RESULTS_DELAY", models.DefaultResultsDelay)
	c.Game.LastChanceWindow = envDuration("LAST_CHANCE_WINDOW", models.DefaultLastChanceWindow)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	if c.Redis.DB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}
	if c.Redis.SessionTTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}
	if c.Game.MaxRounds < 1 {
		return errors.New("MAX_ROUNDS must be at least 1")
	}
	if !c.Game.Difficulty.IsValid() {
		return fmt.Errorf("unsupported WORD_DIFFICULTY=%q", c.Game.Difficulty)
	}
	if c.Game.StartDelay < 0 || c.Game.ResultsDelay < 0 || c.Game.LastChanceWindow <= 0 {
		return errors.New("START_DELAY and RESULTS_DELAY must not be negative and LAST_CHANCE_WINDOW must be positive")
	}
	return nil
}

// GameDefaults returns the settings new sessions start with
func (c Config) GameDefaults() models.Settings {
	settings := models.DefaultSettings()
	settings.MaxRounds = c.Game.MaxRounds
	settings.Difficulty = c.Game.Difficulty
	settings.StartDelay = c.Game.StartDelay
	settings.ResultsDelay = c.Game.ResultsDelay
	settings.LastChanceWindow = c.Game.LastChanceWindow
	return settings
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
