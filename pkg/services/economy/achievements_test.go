package economy

import (
	"context"
	"testing"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateUnlocksOnce(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	unlocked, err := te.Evaluate(ctx, entities.TotalWins(25))
	require.NoError(t, err)
	require.Len(t, unlocked, 2)
	assert.Equal(t, "Champion", unlocked[0].Title)
	assert.Equal(t, "Legend", unlocked[1].Title)
	assert.True(t, unlocked[0].IsUnlocked)
	assert.Equal(t, InitialCoins+600+1000, te.Coins())

	unlocked, err = te.Evaluate(ctx, entities.TotalWins(30))
	require.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, InitialCoins+1600, te.Coins())
}

func TestEvaluateBelowThreshold(t *testing.T) {
	ctx := context.Background()
	te := newTestEngine(t)

	events := []entities.AchievementEvent{
		entities.HighBet(499),
		entities.WinStreak(2),
		entities.LossStreak(10),
		entities.StoryUnlock(4),
		entities.TotalWins(9),
		entities.LowBetWin(11),
		entities.TotalBets(4999),
		entities.ChestsOpened(19),
		entities.RichPlayer(9999),
		entities.DailyPlayer(6),
	}
	for _, ev := range events {
		unlocked, err := te.Evaluate(ctx, ev)
		require.NoError(t, err)
		assert.Empty(t, unlocked, ev.String())
	}
	assert.Equal(t, InitialCoins, te.Coins())
}

func TestEvaluateUnknownKind(t *testing.T) {
	te := newTestEngine(t)

	_, err := te.Evaluate(context.Background(), entities.AchievementEvent{Kind: entities.EventKind(42)})
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}
