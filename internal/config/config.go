package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends for the engine snapshot
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // "development" or "production"
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Snapshot storage
	DataDir     string `env:"DATA_DIR" envDefault:"./data"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"file"`

	// Redis, used when StorageType is "redis"
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"onexrace"`

	// Transaction ledger
	LedgerType string `env:"LEDGER_TYPE" envDefault:"memory"`

	// Elasticsearch indexing of ledger entries is enabled when URL is set
	ElasticsearchURL         string `env:"ELASTICSEARCH_URL"`
	ElasticsearchUsername    string `env:"ELASTICSEARCH_USERNAME"`
	ElasticsearchPassword    string `env:"ELASTICSEARCH_PASSWORD"`
	ElasticsearchIndexPrefix string `env:"ELASTICSEARCH_INDEX_PREFIX" envDefault:"onexrace"`

	// How often a failed snapshot save is retried
	PersistRetryInterval time.Duration `env:"PERSIST_RETRY_INTERVAL" envDefault:"30s"`
}

// Load reads the configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if cfg.needsDataDir() {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks that enumerated settings hold known values
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageFile, StorageSQLite, StorageRedis:
	default:
		return fmt.Errorf("STORAGE_TYPE must be one of memory, file, sqlite, redis (got %q)", c.StorageType)
	}
	switch c.LedgerType {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("LEDGER_TYPE must be one of memory, sqlite (got %q)", c.LedgerType)
	}
	if c.PersistRetryInterval <= 0 {
		return fmt.Errorf("PERSIST_RETRY_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) needsDataDir() bool {
	return c.StorageType == StorageFile || c.StorageType == StorageSQLite || c.LedgerType == StorageSQLite
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SnapshotFilePath is where the file backend keeps the engine snapshot
func (c *Config) SnapshotFilePath() string {
	return filepath.Join(c.DataDir, "onexrace.json")
}

// DatabasePath is the SQLite database shared by the sqlite store and ledger
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "onexrace.db")
}

// ElasticsearchEnabled reports whether ledger entries should be indexed
func (c *Config) ElasticsearchEnabled() bool {
	return c.ElasticsearchURL != ""
}
