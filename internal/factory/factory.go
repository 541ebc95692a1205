package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/questgate/steamqual/internal/dependencies/clock"
	"github.com/questgate/steamqual/internal/dependencies/random"
	"github.com/questgate/steamqual/internal/services/auth"
	"github.com/questgate/steamqual/internal/services/checker"
	"github.com/questgate/steamqual/internal/services/collector"
	"github.com/questgate/steamqual/internal/services/qualify"
	"github.com/questgate/steamqual/internal/steam"
	"github.com/questgate/steamqual/internal/storage"
	"github.com/questgate/steamqual/internal/storage/memory"
	redisstorage "github.com/questgate/steamqual/internal/storage/redis"
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
	Clock  clock.Clock
	Random random.Random

	// Steam API client
	SteamClient steam.API

	// Services
	CollectorService *collector.Service
	QualifyService   *qualify.Service
	CheckerService   *checker.Service
	AuthService      *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// SteamAPIKey is the Steam Web API key (required)
	SteamAPIKey string
	// SteamBaseURL overrides the Steam API endpoint (optional, for testing)
	SteamBaseURL string
	// CollectorConfig holds collection settings (optional)
	// If zero value, defaults to collector.DefaultConfig()
	CollectorConfig collector.Config
	// CheckerConfig holds check caching settings (optional)
	// If zero value, defaults to checker.DefaultConfig()
	CheckerConfig checker.Config
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.SteamAPIKey == "" {
		return nil, errors.New("SteamAPIKey is required")
	}

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

	steamCfg := steam.DefaultConfig(cfg.SteamAPIKey)
	if cfg.SteamBaseURL != "" {
		steamCfg.BaseURL = cfg.SteamBaseURL
	}
	steamClient := steam.NewClient(steamCfg)

	// Zero checker config means caching disabled, which is a valid explicit
	// choice at the service level but not the factory default
	if cfg.CheckerConfig.ResultTTL == 0 {
		cfg.CheckerConfig = checker.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, steamClient, cfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	steamClient steam.API,
	cfg Config,
	logger *slog.Logger,
) *App {
	// Create services
	collectorService := collector.New(steamClient, cfg.CollectorConfig, logger)
	qualifyService := qualify.New()
	checkerService := checker.New(collectorService, qualifyService, store, clk, cfg.CheckerConfig, logger)
	authService := auth.New(store, clk, rnd, cfg.AuthConfig)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		SteamClient:      steamClient,
		CollectorService: collectorService,
		QualifyService:   qualifyService,
		CheckerService:   checkerService,
		AuthService:      authService,
	}
}
