package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChestTypeTable(t *testing.T) {
	testCases := []struct {
		chestType ChestType
		interval  time.Duration
		reward    int64
		title     string
	}{
		{ChestDaily, 24 * time.Hour, 100, "Daily Chest"},
		{ChestWeekly, 72 * time.Hour, 300, "Weekly Chest"},
		{ChestMonthly, 168 * time.Hour, 1000, "Monthly Chest"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.chestType), func(t *testing.T) {
			assert.True(t, tc.chestType.Valid())
			assert.Equal(t, tc.interval, tc.chestType.Interval())
			assert.Equal(t, tc.reward, tc.chestType.Reward())
			assert.Equal(t, tc.title, tc.chestType.Title())
		})
	}

	assert.False(t, ChestType("yearly").Valid())
	assert.Zero(t, ChestType("yearly").Reward())
}

func TestChestAvailability(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	never := Chest{Type: ChestDaily}
	assert.True(t, never.IsAvailable(now))
	assert.Equal(t, now, never.NextAvailableAt(now))

	opened := now.Add(-23 * time.Hour)
	cooling := Chest{Type: ChestDaily, LastOpenedAt: &opened}
	assert.False(t, cooling.IsAvailable(now))
	assert.Equal(t, opened.Add(24*time.Hour), cooling.NextAvailableAt(now))

	exactly := now.Add(-24 * time.Hour)
	ready := Chest{Type: ChestDaily, LastOpenedAt: &exactly}
	assert.True(t, ready.IsAvailable(now), "available once the full interval has elapsed")
}

func TestChestClone(t *testing.T) {
	opened := time.Now()
	c := Chest{Type: ChestWeekly, LastOpenedAt: &opened}

	clone := c.Clone()
	*clone.LastOpenedAt = opened.Add(time.Hour)

	assert.Equal(t, opened, *c.LastOpenedAt)
}
