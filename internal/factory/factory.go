// Package factory wires the application together.
package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/starchase/starchase-go/internal/api/sse"
	"github.com/starchase/starchase-go/internal/catalog"
	"github.com/starchase/starchase-go/internal/dependencies/clock"
	"github.com/starchase/starchase-go/internal/dependencies/random"
	"github.com/starchase/starchase-go/internal/dependencies/scheduler"
	"github.com/starchase/starchase-go/internal/model"
	"github.com/starchase/starchase-go/internal/services/auto"
	"github.com/starchase/starchase-go/internal/services/deck"
	"github.com/starchase/starchase-go/internal/services/game"
	"github.com/starchase/starchase-go/internal/services/question"
	"github.com/starchase/starchase-go/internal/services/twist"
	"github.com/starchase/starchase-go/internal/storage"
	"github.com/starchase/starchase-go/internal/storage/memory"
	redisstorage "github.com/starchase/starchase-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	QuestionService *question.Service
	DeckService     *deck.Service
	TwistEngine     *twist.Engine
	GameController  *game.Controller
	AutoService     *auto.Service
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GameConfig tunes the state machine delays (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// QuestionProvider supplies questions from an external source (optional)
	// If nil, the built-in question pool is the only source
	QuestionProvider question.Provider
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	sched := scheduler.New()

	// Use default game config if not provided
	gameCfg := cfg.GameConfig
	if gameCfg == (game.Config{}) {
		gameCfg = game.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, sched, gameCfg, cfg.QuestionProvider, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	gameCfg game.Config,
	provider question.Provider,
	logger *slog.Logger,
) *App {
	// Create services
	questionService := question.New(store, provider, rnd, logger)
	deckService := deck.New(catalog.TwistCards(), rnd, logger)
	twistEngine := twist.NewEngine(rnd, logger)
	gameController := game.New(
		store, questionService, deckService, twistEngine,
		clk, rnd, sched, logger, gameCfg)
	autoService := auto.New(gameController, auto.NewRandomStrategy(rnd), logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)

	// Timer-driven transitions feed the automated players and every
	// transition feeds the event stream
	gameController.SetEventSink(broadcaster.HandleEvent)
	gameController.SetResumeHook(func(id model.SessionID) {
		if err := autoService.ProcessAutoActions(context.Background(), id); err != nil {
			logger.Warn("auto-play pass after timer failed",
				slog.String("session_id", string(id)),
				slog.Any("error", err))
		}
	})

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Scheduler:       sched,
		QuestionService: questionService,
		DeckService:     deckService,
		TwistEngine:     twistEngine,
		GameController:  gameController,
		AutoService:     autoService,
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
	}
}
