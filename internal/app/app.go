package app

import (
	"context"
	"fmt"
	"os"

	"github.com/fadedpez/onexrace/internal/config"
	"github.com/fadedpez/onexrace/internal/logging"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
	"github.com/fadedpez/onexrace/pkg/scheduler"
	"github.com/fadedpez/onexrace/pkg/services/economy"
	"github.com/fadedpez/onexrace/pkg/services/statistics"
	"github.com/fadedpez/onexrace/pkg/storage"
	"github.com/fadedpez/onexrace/pkg/storage/file"
	"github.com/fadedpez/onexrace/pkg/storage/memory"
	"github.com/fadedpez/onexrace/pkg/storage/redis"
	"github.com/fadedpez/onexrace/pkg/storage/sqlite"
)

// App wires one engine to its configured store, ledger and background tasks
type App struct {
	config  *config.Config
	logger  *logging.Logger
	store   storage.KeyValueStore
	ledger  ledger.Repository
	engine  *economy.Engine
	stats   *statistics.Service
	persist *scheduler.PersistenceScheduler
}

// NewLogger builds the process logger from configuration
func NewLogger(cfg *config.Config) *logging.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.INFO
	}
	return logging.New(logging.Options{
		Level:  level,
		JSON:   !cfg.IsDevelopment(),
		Output: os.Stdout,
	})
}

// New opens the store and ledger and loads the engine
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*App, error) {
	a := &App{config: cfg, logger: logger}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StorageType, err)
	}
	a.store = store

	repo, err := openLedger(ctx, cfg)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to open %s ledger: %w", cfg.LedgerType, err)
	}
	a.ledger = repo

	engine, err := economy.New(ctx, store,
		economy.WithLogger(logger.WithField("component", "economy")),
		economy.WithLedger(repo),
	)
	if err != nil {
		a.close()
		return nil, err
	}
	a.engine = engine
	a.stats = statistics.NewService(repo)
	a.persist = scheduler.NewPersistenceScheduler(engine, cfg.PersistRetryInterval, logger.WithField("component", "scheduler"))

	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.KeyValueStore, error) {
	switch cfg.StorageType {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		return file.New(&file.Options{Path: cfg.SnapshotFilePath()})
	case config.StorageSQLite:
		return sqlite.Open(cfg.DatabasePath())
	case config.StorageRedis:
		return redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisKeyPrefix,
		})
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
}

func openLedger(ctx context.Context, cfg *config.Config) (ledger.Repository, error) {
	var base ledger.Repository
	switch cfg.LedgerType {
	case config.StorageSQLite:
		repo, err := ledger.NewSQLiteRepository(cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		base = repo
	default:
		base = ledger.NewMemoryRepository()
	}

	if !cfg.ElasticsearchEnabled() {
		return base, nil
	}

	repo, err := ledger.NewElasticsearchRepository(ctx, base, &ledger.ElasticsearchConfig{
		URL:         cfg.ElasticsearchURL,
		Username:    cfg.ElasticsearchUsername,
		Password:    cfg.ElasticsearchPassword,
		IndexPrefix: cfg.ElasticsearchIndexPrefix,
	})
	if err != nil {
		base.Close()
		return nil, err
	}
	return repo, nil
}

// Engine returns the loaded engine
func (a *App) Engine() *economy.Engine {
	return a.engine
}

// Start begins the persistence retry loop and logs the player status
func (a *App) Start(ctx context.Context) error {
	a.persist.Start(ctx)

	stats, err := a.stats.GetPlayerStats(ctx, a.engine, 0)
	if err != nil {
		return fmt.Errorf("failed to read player statistics: %w", err)
	}
	a.logger.Info("Loaded player: coins=%d wins=%d achievements=%d/%d stories=%d",
		stats.Coins, stats.TotalWins, stats.AchievementsUnlocked, stats.AchievementsTotal, stats.StoriesUnlocked)
	return nil
}

// Shutdown stops background tasks, flushes pending state and closes storage
func (a *App) Shutdown(ctx context.Context) {
	a.persist.Stop()

	if err := a.engine.Flush(ctx); err != nil {
		a.logger.LogError(err)
	}
	a.close()
}

func (a *App) close() {
	if a.ledger != nil {
		if err := a.ledger.Close(); err != nil {
			a.logger.Warn("Error closing ledger: %v", err)
		}
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Error closing store: %v", err)
	}
}
