package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer repo.Close()

	seed(t, repo)
	assertLedger(t, repo)
}

func TestSQLiteRepositoryRoundTripsFields(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	ts := time.Date(2025, 3, 14, 9, 26, 53, 589000000, time.UTC)
	tx := &entities.Transaction{
		ID:           "tx-1",
		Amount:       200,
		Type:         entities.TransactionTypeAchievement,
		ReferenceID:  "8",
		Description:  "High Roller",
		Timestamp:    ts,
		BalanceAfter: 1200,
	}
	require.NoError(t, repo.AddTransaction(ctx, tx))
	require.NoError(t, repo.Close())

	// Reopening runs the migrations again
	repo, err = NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.GetTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)
	assert.Equal(t, tx.Amount, got[0].Amount)
	assert.Equal(t, tx.Type, got[0].Type)
	assert.Equal(t, tx.ReferenceID, got[0].ReferenceID)
	assert.Equal(t, tx.Description, got[0].Description)
	assert.True(t, ts.Equal(got[0].Timestamp))
	assert.Equal(t, tx.BalanceAfter, got[0].BalanceAfter)
}
