package storage

import (
	"context"
	"errors"
)

// Common storage errors
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrClosed      = errors.New("store is closed")
)

// Keys of the persisted engine state
const (
	KeyCoins               = "coins"
	KeyIsFirstLaunch       = "is_first_launch"
	KeyCompletedOnboarding = "completed_onboarding"
	KeyUnlockedStories     = "unlocked_stories"
	KeyTotalWins           = "total_wins"
	KeyWinStreak           = "win_streak"
	KeyLossStreak          = "loss_streak"
	KeyHighestBet          = "highest_bet"
	KeyTotalBets           = "total_bets"
	KeyRacesPlayed         = "races_played"
	KeyTotalWinnings       = "total_winnings"
	KeyChestsCount         = "chests_count"
	KeyConsecutiveDays     = "consecutive_days"
	KeyLastPlayDate        = "last_play_date"
	KeyAchievementsData    = "achievements_data"
	KeyChestsData          = "chests_data"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock_gen.go -package=mock

// KeyValueStore is a durable settings store. Values are opaque bytes; the
// snapshot codec stores JSON.
type KeyValueStore interface {
	// Get returns the value for key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value for key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store
	Close() error
}

// BatchWriter is implemented by stores that can write several keys at once
type BatchWriter interface {
	SetMany(ctx context.Context, entries map[string][]byte) error
}

// SetAll writes entries through SetMany when the store supports it, and one
// key at a time otherwise
func SetAll(ctx context.Context, store KeyValueStore, entries map[string][]byte) error {
	if bw, ok := store.(BatchWriter); ok {
		return bw.SetMany(ctx, entries)
	}
	for key, value := range entries {
		if err := store.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
