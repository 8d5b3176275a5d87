package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// AchievementRecord is the persisted part of an achievement
type AchievementRecord struct {
	ID         int  `json:"id"`
	IsUnlocked bool `json:"isUnlocked"`
}

// ChestRecord is the persisted part of a chest. LastOpened is unix seconds,
// with 0 meaning never opened.
type ChestRecord struct {
	LastOpened float64 `json:"lastOpened"`
}

// Snapshot is the complete persisted engine state
type Snapshot struct {
	Coins               int64
	IsFirstLaunch       bool
	CompletedOnboarding bool
	UnlockedStories     []int
	TotalWins           int64
	WinStreak           int64
	LossStreak          int64
	HighestBet          int64
	TotalBets           int64
	RacesPlayed         int64
	TotalWinnings       int64
	ChestsCount         int64
	ConsecutiveDays     int64
	LastPlayDate        *time.Time
	Achievements        []AchievementRecord
	Chests              map[string]ChestRecord
}

// NewSnapshot returns the state of a store that has never been written
func NewSnapshot() *Snapshot {
	return &Snapshot{
		IsFirstLaunch:   true,
		UnlockedStories: []int{0},
		Chests:          make(map[string]ChestRecord),
	}
}

// ChestTime converts a persisted chest timestamp to an optional time.
// Sub-microsecond remainders round up so a reloaded chest never becomes
// available earlier than it would have in memory.
func ChestTime(r ChestRecord) *time.Time {
	if r.LastOpened <= 0 {
		return nil
	}
	t := time.UnixMicro(int64(math.Ceil(r.LastOpened * 1e6)))
	return &t
}

// NewChestRecord converts an optional time to its persisted form, rounded
// up to the microsecond
func NewChestRecord(t *time.Time) ChestRecord {
	if t == nil {
		return ChestRecord{}
	}
	us := t.UnixMicro()
	if t.Nanosecond()%1000 != 0 {
		us++
	}
	return ChestRecord{LastOpened: float64(us) / 1e6}
}

// LoadSnapshot reads every key from store. Missing keys keep the defaults of NewSnapshot.
func LoadSnapshot(ctx context.Context, store KeyValueStore) (*Snapshot, error) {
	snap := NewSnapshot()

	fields := []struct {
		key    string
		target interface{}
	}{
		{KeyCoins, &snap.Coins},
		{KeyIsFirstLaunch, &snap.IsFirstLaunch},
		{KeyCompletedOnboarding, &snap.CompletedOnboarding},
		{KeyUnlockedStories, &snap.UnlockedStories},
		{KeyTotalWins, &snap.TotalWins},
		{KeyWinStreak, &snap.WinStreak},
		{KeyLossStreak, &snap.LossStreak},
		{KeyHighestBet, &snap.HighestBet},
		{KeyTotalBets, &snap.TotalBets},
		{KeyRacesPlayed, &snap.RacesPlayed},
		{KeyTotalWinnings, &snap.TotalWinnings},
		{KeyChestsCount, &snap.ChestsCount},
		{KeyConsecutiveDays, &snap.ConsecutiveDays},
		{KeyLastPlayDate, &snap.LastPlayDate},
		{KeyAchievementsData, &snap.Achievements},
		{KeyChestsData, &snap.Chests},
	}

	for _, f := range fields {
		data, err := store.Get(ctx, f.key)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.key, err)
		}
		if err := json.Unmarshal(data, f.target); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", f.key, err)
		}
	}

	if snap.Chests == nil {
		snap.Chests = make(map[string]ChestRecord)
	}

	return snap, nil
}

// SaveSnapshot writes every key of snap to store. last_play_date is only
// written once it is set.
func SaveSnapshot(ctx context.Context, store KeyValueStore, snap *Snapshot) error {
	stories := make([]int, len(snap.UnlockedStories))
	copy(stories, snap.UnlockedStories)
	sort.Ints(stories)

	values := map[string]interface{}{
		KeyCoins:               snap.Coins,
		KeyIsFirstLaunch:       snap.IsFirstLaunch,
		KeyCompletedOnboarding: snap.CompletedOnboarding,
		KeyUnlockedStories:     stories,
		KeyTotalWins:           snap.TotalWins,
		KeyWinStreak:           snap.WinStreak,
		KeyLossStreak:          snap.LossStreak,
		KeyHighestBet:          snap.HighestBet,
		KeyTotalBets:           snap.TotalBets,
		KeyRacesPlayed:         snap.RacesPlayed,
		KeyTotalWinnings:       snap.TotalWinnings,
		KeyChestsCount:         snap.ChestsCount,
		KeyConsecutiveDays:     snap.ConsecutiveDays,
		KeyAchievementsData:    snap.Achievements,
		KeyChestsData:          snap.Chests,
	}
	if snap.LastPlayDate != nil {
		values[KeyLastPlayDate] = snap.LastPlayDate
	}

	entries := make(map[string][]byte, len(values))
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		entries[key] = data
	}

	return SetAll(ctx, store, entries)
}
