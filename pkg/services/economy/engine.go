package economy

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fadedpez/onexrace/internal/logging"
	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
	"github.com/fadedpez/onexrace/pkg/services/achievements"
	"github.com/fadedpez/onexrace/pkg/services/stories"
	"github.com/fadedpez/onexrace/pkg/services/wallet"
	"github.com/fadedpez/onexrace/pkg/storage"
)

// InitialCoins is granted on the first launch
const InitialCoins int64 = 1000

// Engine owns the wallet, progress counters, achievements, chests and
// unlocked stories of one player. It is safe for concurrent use; every
// operation runs to completion under a single lock and persists its result
// before returning.
type Engine struct {
	mu sync.Mutex

	store     storage.KeyValueStore
	ledger    ledger.Repository
	evaluator *achievements.Evaluator
	catalog   *stories.Catalog
	logger    *logging.Logger
	now       func() time.Time
	rng       Rand
	loc       *time.Location

	wallet              *wallet.Service
	progress            entities.Progress
	achievements        []entities.Achievement
	chests              map[entities.ChestType]entities.Chest
	stories             map[int]struct{}
	isFirstLaunch       bool
	completedOnboarding bool

	// dirty is set when the last save failed
	dirty bool
}

// New loads the engine state from store, applying defaults for anything
// missing. On the first launch the player is granted InitialCoins and the
// state is saved immediately.
func New(ctx context.Context, store storage.KeyValueStore, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, types.InvalidArgument("store is required")
	}

	e := &Engine{
		store:     store,
		evaluator: achievements.NewDefaultEvaluator(),
		catalog:   stories.DefaultCatalog(),
		logger:    logging.Default,
		now:       time.Now,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = defaultRand()
	}

	snap, err := storage.LoadSnapshot(ctx, store)
	if err != nil {
		return nil, types.WrapError(types.ErrPersistenceError, "failed to load engine state", err)
	}
	e.restore(snap)

	if e.isFirstLaunch {
		if err := e.wallet.AddFunds(ctx, InitialCoins, entities.TransactionTypeInitial, "", "Welcome bonus"); err != nil {
			return nil, err
		}
		e.isFirstLaunch = false
		e.logger.Info("First launch: granted %d coins", InitialCoins)
		e.persist(ctx)
	}

	e.logger.Debug("Engine loaded: coins=%d stories=%d", e.wallet.Balance(), len(e.stories))
	return e, nil
}

// restore replaces the in-memory state with snap. Achievement definitions
// come from the catalog; only the unlocked flags are taken from snap.
func (e *Engine) restore(snap *storage.Snapshot) {
	e.wallet = wallet.NewService(snap.Coins, e.ledger, e.logger, e.now)
	e.isFirstLaunch = snap.IsFirstLaunch
	e.completedOnboarding = snap.CompletedOnboarding

	e.progress = entities.Progress{
		TotalWins:         snap.TotalWins,
		CurrentWinStreak:  snap.WinStreak,
		CurrentLossStreak: snap.LossStreak,
		HighestBet:        snap.HighestBet,
		TotalBetsAmount:   snap.TotalBets,
		RacesPlayed:       snap.RacesPlayed,
		TotalWinnings:     snap.TotalWinnings,
		ChestsOpenedCount: snap.ChestsCount,
		ConsecutiveDays:   snap.ConsecutiveDays,
	}
	if snap.LastPlayDate != nil {
		t := *snap.LastPlayDate
		e.progress.LastPlayedAt = &t
	}

	unlocked := make(map[int]bool, len(snap.Achievements))
	for _, rec := range snap.Achievements {
		unlocked[rec.ID] = rec.IsUnlocked
	}
	e.achievements = entities.AchievementCatalog()
	for i := range e.achievements {
		e.achievements[i].IsUnlocked = unlocked[e.achievements[i].ID]
	}

	e.chests = make(map[entities.ChestType]entities.Chest, len(entities.ChestTypes))
	for _, ct := range entities.ChestTypes {
		e.chests[ct] = entities.Chest{
			Type:         ct,
			LastOpenedAt: storage.ChestTime(snap.Chests[string(ct)]),
		}
	}

	e.stories = map[int]struct{}{entities.FreeStoryID: {}}
	for _, id := range snap.UnlockedStories {
		e.stories[id] = struct{}{}
	}
}

// snapshot captures the in-memory state for saving
func (e *Engine) snapshot() *storage.Snapshot {
	snap := &storage.Snapshot{
		Coins:               e.wallet.Balance(),
		IsFirstLaunch:       e.isFirstLaunch,
		CompletedOnboarding: e.completedOnboarding,
		UnlockedStories:     e.storyIDs(),
		TotalWins:           e.progress.TotalWins,
		WinStreak:           e.progress.CurrentWinStreak,
		LossStreak:          e.progress.CurrentLossStreak,
		HighestBet:          e.progress.HighestBet,
		TotalBets:           e.progress.TotalBetsAmount,
		RacesPlayed:         e.progress.RacesPlayed,
		TotalWinnings:       e.progress.TotalWinnings,
		ChestsCount:         e.progress.ChestsOpenedCount,
		ConsecutiveDays:     e.progress.ConsecutiveDays,
		Achievements:        make([]storage.AchievementRecord, 0, len(e.achievements)),
		Chests:              make(map[string]storage.ChestRecord, len(e.chests)),
	}
	if e.progress.LastPlayedAt != nil {
		t := *e.progress.LastPlayedAt
		snap.LastPlayDate = &t
	}
	for _, a := range e.achievements {
		snap.Achievements = append(snap.Achievements, storage.AchievementRecord{ID: a.ID, IsUnlocked: a.IsUnlocked})
	}
	for ct, chest := range e.chests {
		snap.Chests[string(ct)] = storage.NewChestRecord(chest.LastOpenedAt)
	}
	return snap
}

// persist saves the state. A failure is logged and leaves the engine dirty
// for Flush to retry; gameplay never fails because of it.
func (e *Engine) persist(ctx context.Context) {
	if err := storage.SaveSnapshot(ctx, e.store, e.snapshot()); err != nil {
		e.dirty = true
		e.logger.LogError(types.WrapError(types.ErrPersistenceError, "failed to save engine state", err))
		return
	}
	e.dirty = false
}

// Flush retries a failed save. It is a no-op when the last save succeeded.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dirty {
		return nil
	}
	if err := storage.SaveSnapshot(ctx, e.store, e.snapshot()); err != nil {
		return types.WrapError(types.ErrPersistenceError, "failed to save engine state", err)
	}
	e.dirty = false
	e.logger.Info("Engine state saved after earlier failure")
	return nil
}

// Dirty reports whether unsaved changes are pending
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Coins returns the current balance
func (e *Engine) Coins() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.wallet.Balance()
}

// Progress returns a copy of the progress counters
func (e *Engine) Progress() entities.Progress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.Clone()
}

// Achievements returns a copy of every achievement in catalog order
func (e *Engine) Achievements() []entities.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entities.Achievement, len(e.achievements))
	copy(out, e.achievements)
	return out
}

// Chests returns a copy of every chest in display order
func (e *Engine) Chests() []entities.Chest {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]entities.Chest, 0, len(entities.ChestTypes))
	for _, ct := range entities.ChestTypes {
		out = append(out, e.chests[ct].Clone())
	}
	return out
}

// UnlockedStories returns the unlocked story ids in ascending order
func (e *Engine) UnlockedStories() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.storyIDs()
}

func (e *Engine) storyIDs() []int {
	ids := make([]int, 0, len(e.stories))
	for id := range e.stories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsFirstLaunch reports whether the first-launch grant is still pending.
// It is false for any engine returned by New.
func (e *Engine) IsFirstLaunch() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isFirstLaunch
}

// CompleteOnboarding records that the player finished the introduction
func (e *Engine) CompleteOnboarding(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completedOnboarding {
		return
	}
	e.completedOnboarding = true
	e.persist(ctx)
}

// HasCompletedOnboarding reports whether CompleteOnboarding was called
func (e *Engine) HasCompletedOnboarding() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedOnboarding
}

// AddCoins credits amount, which must not be negative
func (e *Engine) AddCoins(ctx context.Context, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.wallet.AddFunds(ctx, amount, entities.TransactionTypeAdjustment, "", "Coins added"); err != nil {
		return err
	}
	e.persist(ctx)
	return nil
}

// SpendCoins debits amount if the balance covers it. Insufficient funds
// return false with no change.
func (e *Engine) SpendCoins(ctx context.Context, amount int64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.spend(ctx, amount, entities.TransactionTypeAdjustment, "", "Coins spent")
}

// spend debits through the wallet and persists on success
func (e *Engine) spend(ctx context.Context, amount int64, txType entities.TransactionType, referenceID, description string) (bool, error) {
	ok, err := e.wallet.RemoveFunds(ctx, amount, txType, referenceID, description)
	if err != nil || !ok {
		return false, err
	}
	e.persist(ctx)
	return true, nil
}

// String summarizes the engine for logs
func (e *Engine) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("Engine{coins=%d wins=%d stories=%d dirty=%t}",
		e.wallet.Balance(), e.progress.TotalWins, len(e.stories), e.dirty)
}
