package economy

import (
	"context"
	"testing"
	"time"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chestOf(t *testing.T, te *testEngine, ct entities.ChestType) entities.Chest {
	t.Helper()
	for _, c := range te.Chests() {
		if c.Type == ct {
			return c
		}
	}
	t.Fatalf("chest %s missing", ct)
	return entities.Chest{}
}

func TestOpenChestCooldown(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		chest    entities.ChestType
		reward   int64
		interval time.Duration
	}{
		{entities.ChestDaily, 100, 24 * time.Hour},
		{entities.ChestWeekly, 300, 72 * time.Hour},
		{entities.ChestMonthly, 1000, 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(string(tt.chest), func(t *testing.T) {
			te := newTestEngine(t)
			opened := te.clock.Now()

			reward, ok, err := te.OpenChest(ctx, tt.chest)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.reward, reward)
			assert.Equal(t, InitialCoins+tt.reward, te.Coins())

			te.clock.Advance(tt.interval - time.Second)
			reward, ok, err = te.OpenChest(ctx, tt.chest)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, reward)
			assert.Equal(t, InitialCoins+tt.reward, te.Coins())
			assert.True(t, opened.Equal(*chestOf(t, te, tt.chest).LastOpenedAt), "timer unchanged")

			te.clock.Advance(time.Second)
			reward, ok, err = te.OpenChest(ctx, tt.chest)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.reward, reward)
			assert.True(t, te.clock.Now().Equal(*chestOf(t, te, tt.chest).LastOpenedAt), "timer reset to now")
			assert.Equal(t, int64(2), te.Progress().ChestsOpenedCount)
		})
	}
}

func TestOpenChestUnknownType(t *testing.T) {
	te := newTestEngine(t)

	_, ok, err := te.OpenChest(context.Background(), entities.ChestType("yearly"))
	assert.False(t, ok)
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}

func TestChestHunter(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	for i := 0; i < 20; i++ {
		_, ok, err := te.OpenChest(ctx, entities.ChestDaily)
		require.NoError(t, err)
		require.True(t, ok)
		te.clock.Advance(24 * time.Hour)
	}

	assert.Equal(t, int64(20), te.Progress().ChestsOpenedCount)
	assert.Equal(t, []int{12}, te.unlocked(t))
	assert.Equal(t, InitialCoins+20*100+600, te.Coins())
}

func TestChestStatuses(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	_, _, err := te.OpenChest(ctx, entities.ChestWeekly)
	require.NoError(t, err)
	te.clock.Advance(time.Hour)

	statuses := te.ChestStatuses()
	require.Len(t, statuses, 3)
	assert.True(t, statuses[0].Available)
	assert.Zero(t, statuses[0].Remaining)
	assert.False(t, statuses[1].Available)
	assert.Equal(t, 71*time.Hour, statuses[1].Remaining)
	assert.True(t, statuses[2].Available)
}

func TestChestsReturnsCopies(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	_, _, err := te.OpenChest(ctx, entities.ChestDaily)
	require.NoError(t, err)

	chests := te.Chests()
	*chests[0].LastOpenedAt = time.Time{}

	assert.False(t, chestOf(t, te, entities.ChestDaily).LastOpenedAt.IsZero())
}
