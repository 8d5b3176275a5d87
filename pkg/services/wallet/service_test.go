package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLedger struct {
	*ledger.MemoryRepository
}

func (failingLedger) AddTransaction(context.Context, *entities.Transaction) error {
	return errors.New("ledger offline")
}

func TestAddAndRemoveFunds(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewMemoryRepository()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewService(100, repo, nil, func() time.Time { return fixed })

	require.NoError(t, s.AddFunds(ctx, 50, entities.TransactionTypeChest, "daily", "Daily Chest"))
	assert.Equal(t, int64(150), s.Balance())

	ok, err := s.RemoveFunds(ctx, 120, entities.TransactionTypeBet, "", "bet")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(30), s.Balance())

	ok, err = s.RemoveFunds(ctx, 31, entities.TransactionTypeBet, "", "bet")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(30), s.Balance())

	txs, err := repo.GetTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, int64(-120), txs[0].Amount)
	assert.Equal(t, int64(30), txs[0].BalanceAfter)
	assert.Equal(t, entities.TransactionTypeChest, txs[1].Type)
	assert.Equal(t, "daily", txs[1].ReferenceID)
	assert.True(t, fixed.Equal(txs[1].Timestamp))
}

func TestNegativeAmountsRejected(t *testing.T) {
	ctx := context.Background()
	s := NewService(100, nil, nil, nil)

	err := s.AddFunds(ctx, -1, entities.TransactionTypeAdjustment, "", "")
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))

	ok, err := s.RemoveFunds(ctx, -1, entities.TransactionTypeAdjustment, "", "")
	assert.False(t, ok)
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
	assert.Equal(t, int64(100), s.Balance())
}

func TestZeroAmountsAreNotRecorded(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewMemoryRepository()
	s := NewService(0, repo, nil, nil)

	require.NoError(t, s.AddFunds(ctx, 0, entities.TransactionTypeAdjustment, "", ""))
	ok, err := s.RemoveFunds(ctx, 0, entities.TransactionTypeAdjustment, "", "")
	require.NoError(t, err)
	assert.True(t, ok)

	txs, err := repo.GetTransactions(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLedgerFailureDoesNotBlockBalance(t *testing.T) {
	s := NewService(10, failingLedger{ledger.NewMemoryRepository()}, nil, nil)

	require.NoError(t, s.AddFunds(context.Background(), 5, entities.TransactionTypeAdjustment, "", ""))
	assert.Equal(t, int64(15), s.Balance())
}
