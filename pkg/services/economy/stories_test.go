package economy

import (
	"context"
	"testing"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryCollectorUnlocksOnce(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)
	require.NoError(t, te.AddCoins(ctx, 20000))

	for id := 1; id <= 3; id++ {
		ok, err := te.UnlockStory(ctx, id, 100)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Empty(t, te.unlocked(t))

	ok, err := te.UnlockStory(ctx, 4, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, te.UnlockedStories())
	assert.Equal(t, []int{3}, te.unlocked(t))

	for id := 5; id <= 9; id++ {
		_, err := te.UnlockStory(ctx, id, 100)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{3, 10}, te.unlocked(t))
	assert.Equal(t, 1, te.rewardsPaid(t, "3"))

	// 1000 + 20000 - 9*100 + 400 + 800
	assert.Equal(t, int64(21300), te.Coins())
}

func TestUnlockStoryInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	ok, err := te.UnlockStory(ctx, 7, 1200)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, te.IsStoryUnlocked(7))
	assert.Equal(t, InitialCoins, te.Coins())

	_, err = te.UnlockStory(ctx, 7, -1)
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}

func TestRebuyingStoryStillSpends(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	_, err := te.UnlockStory(ctx, 2, 300)
	require.NoError(t, err)
	ok, err := te.UnlockStory(ctx, 2, 300)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, int64(400), te.Coins())
	assert.Equal(t, []int{0, 2}, te.UnlockedStories())
}

func TestUnlockCatalogStory(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	_, err := te.UnlockCatalogStory(ctx, 99)
	assert.True(t, types.IsGameError(err, types.ErrStoryNotFound))

	ok, err := te.UnlockCatalogStory(ctx, entities.FreeStoryID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, InitialCoins, te.Coins())

	ok, err = te.UnlockCatalogStory(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, InitialCoins-500, te.Coins())
	assert.True(t, te.IsStoryUnlocked(1))

	stories, err := te.ledger.GetTransactionsByType(ctx, entities.TransactionTypeStory, 0)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Monaco Magic", stories[0].Description)
}

func TestLibrarianWithFullCatalog(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)
	require.NoError(t, te.AddCoins(ctx, 50000))

	catalog := te.Catalog()
	require.Len(t, catalog, 18)
	for _, story := range catalog {
		ok, err := te.UnlockCatalogStory(ctx, story.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.Len(t, te.UnlockedStories(), 18)
	assert.Equal(t, []int{3, 10, 11}, te.unlocked(t))
}
