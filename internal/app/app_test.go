package app

import (
	"context"
	"testing"
	"time"

	"github.com/fadedpez/onexrace/internal/config"
	"github.com/fadedpez/onexrace/internal/logging"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/fadedpez/onexrace/pkg/services/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, storageType, ledgerType string) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:          "development",
		LogLevel:             "error",
		DataDir:              t.TempDir(),
		StorageType:          storageType,
		LedgerType:           ledgerType,
		PersistRetryInterval: time.Hour,
	}
}

func TestAppPersistsAcrossRestarts(t *testing.T) {
	backends := []struct {
		storage string
		ledger  string
	}{
		{config.StorageFile, config.StorageMemory},
		{config.StorageSQLite, config.StorageSQLite},
	}

	for _, b := range backends {
		t.Run(b.storage, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, b.storage, b.ledger)

			a, err := New(ctx, cfg, logging.Discard())
			require.NoError(t, err)
			require.NoError(t, a.Start(ctx))

			assert.Equal(t, economy.InitialCoins, a.Engine().Coins())
			_, ok, err := a.Engine().OpenChest(ctx, entities.ChestMonthly)
			require.NoError(t, err)
			require.True(t, ok)
			a.Shutdown(ctx)

			a, err = New(ctx, cfg, logging.Discard())
			require.NoError(t, err)
			defer a.Shutdown(ctx)

			assert.Equal(t, economy.InitialCoins+1000, a.Engine().Coins())
			assert.False(t, a.Engine().ChestStatuses()[2].Available)
		})
	}
}

func TestAppMemoryStorage(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t, config.StorageMemory, config.StorageMemory), logging.Discard())
	require.NoError(t, err)
	require.NoError(t, a.Start(ctx))
	a.Shutdown(ctx)
}

func TestNewLogger(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug", Environment: "production"}
	assert.Equal(t, logging.DEBUG, NewLogger(cfg).Level())

	cfg.LogLevel = "nonsense"
	assert.Equal(t, logging.INFO, NewLogger(cfg).Level())
}
