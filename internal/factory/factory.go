package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/userbinhq/userbin/internal/dependencies/clock"
	"github.com/userbinhq/userbin/internal/services/auth"
	"github.com/userbinhq/userbin/internal/services/token"
	"github.com/userbinhq/userbin/internal/store"
	"github.com/userbinhq/userbin/internal/store/jsonbin"
	"github.com/userbinhq/userbin/internal/store/memory"
	redisstore "github.com/userbinhq/userbin/internal/store/redis"
)

// Storage type constants
const (
	StorageTypeMemory  = "memory"
	StorageTypeJSONBin = "jsonbin"
	StorageTypeRedis   = "redis"
)

// App contains all wired application components
type App struct {
	Store       store.DocumentStore
	Clock       clock.Clock
	TokenIssuer *token.Issuer
	AuthService *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// TokenConfig holds signing secret and validity for issued tokens
	TokenConfig token.Config
	// StorageType selects the store backend ("memory", "jsonbin" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// JSONBinConfig holds remote store settings (required if StorageType is "jsonbin")
	JSONBinConfig *jsonbin.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstore.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create store based on type
	var docStore store.DocumentStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		docStore = memory.New()
	case StorageTypeJSONBin:
		if cfg.JSONBinConfig == nil {
			return nil, errors.New("JSONBinConfig required when StorageType is jsonbin")
		}
		jsonbinStore, err := jsonbin.New(*cfg.JSONBinConfig, logger)
		if err != nil {
			return nil, err
		}
		docStore = jsonbinStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstore.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		docStore = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'jsonbin' or 'redis'")
	}

	clk := clock.New()

	return newWithDependencies(docStore, clk, cfg.TokenConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(docStore store.DocumentStore, clk clock.Clock, tokenCfg token.Config, logger *slog.Logger) *App {
	issuer := token.New(tokenCfg, clk)
	authService := auth.New(docStore, issuer, clk, logger)

	return &App{
		Store:       docStore,
		Clock:       clk,
		TokenIssuer: issuer,
		AuthService: authService,
	}
}
