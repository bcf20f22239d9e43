package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/imposter/internal/common/clock"
	"github.com/KirkDiggler/imposter/internal/common/uuid"
	"github.com/KirkDiggler/imposter/internal/config"
	"github.com/KirkDiggler/imposter/internal/handlers/terminal"
	"github.com/KirkDiggler/imposter/internal/random"
	"github.com/KirkDiggler/imposter/internal/repositories/session"
	gameService "github.com/KirkDiggler/imposter/internal/services/game"
	"github.com/KirkDiggler/imposter/internal/services/messaging"
	"github.com/KirkDiggler/imposter/internal/words"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	resume := flag.String("session", "", "resume a saved session by ID")
	list := flag.Bool("list", false, "list resumable sessions and exit")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := newSessionRepository(ctx, cfg)
	if err != nil {
		logger.Error("failed to create session repository", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	rng := random.New(&random.Config{Seed: cfg.Game.RandomSeed})

	catalog, err := words.New(&words.Config{Random: rng})
	if err != nil {
		logger.Error("failed to load word catalog", "error", err)
		os.Exit(1)
	}

	defaults := cfg.GameDefaults()
	gameSvc, err := gameService.New(&gameService.Config{
		Defaults:      &defaults,
		SessionRepo:   repo,
		Words:         catalog,
		Random:        rng,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("failed to create game service", "error", err)
		os.Exit(1)
	}

	if *list {
		out, err := gameSvc.ListActiveSessions(ctx, &gameService.ListActiveSessionsInput{})
		if err != nil {
			logger.Error("failed to list sessions", "error", err)
			os.Exit(1)
		}
		for _, id := range out.SessionIDs {
			os.Stdout.WriteString(id + "\n")
		}
		return
	}

	messagingSvc, err := messaging.New(&messaging.Config{Random: rng})
	if err != nil {
		logger.Error("failed to create messaging service", "error", err)
		os.Exit(1)
	}

	term, err := terminal.New(&terminal.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		GameService: gameSvc,
		Messaging:   messagingSvc,
		SessionID:   *resume,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to create terminal", "error", err)
		os.Exit(1)
	}

	// The prompt blocks on stdin, so an interrupt exits directly. Every command is already saved.
	go func() {
		<-ctx.Done()
		logger.Info("interrupted", "session_id", term.SessionID())
		os.Exit(130)
	}()

	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("game stopped", "session_id", term.SessionID(), "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(cfg.Log.Level))

	// Logs go to stderr so they do not interleave with the game screen
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newSessionRepository picks Redis when an address is configured, memory otherwise
func newSessionRepository(ctx context.Context, cfg config.Config) (session.Repository, func(), error) {
	if cfg.Redis.Addr == "" {
		return session.NewMemory(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	repo, err := session.NewRedis(&session.Config{
		RedisClient: client,
		TTL:         cfg.Redis.SessionTTL,
	})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return repo, func() { client.Close() }, nil
}
