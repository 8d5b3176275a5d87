package economy

import (
	"context"
	"time"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
)

// OpenChest opens the chest of type ct if its cooldown has elapsed, crediting
// its reward. An unavailable chest returns ok=false and changes nothing.
func (e *Engine) OpenChest(ctx context.Context, ct entities.ChestType) (reward int64, ok bool, err error) {
	if !ct.Valid() {
		return 0, false, types.InvalidArgument("unknown chest type %q", ct)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	chest := e.chests[ct]
	if !chest.IsAvailable(now) {
		e.logger.Debug("%s not available until %s", ct.Title(), chest.NextAvailableAt(now).Format("2006-01-02 15:04:05"))
		return 0, false, nil
	}

	reward = ct.Reward()
	if err := e.wallet.AddFunds(ctx, reward, entities.TransactionTypeChest, string(ct), ct.Title()); err != nil {
		return 0, false, err
	}

	e.chests[ct] = entities.Chest{Type: ct, LastOpenedAt: &now}
	e.progress.ChestsOpenedCount++
	e.evaluate(ctx, entities.ChestsOpened(e.progress.ChestsOpenedCount))

	e.persist(ctx)
	return reward, true, nil
}

// ChestStatus describes one chest for display
type ChestStatus struct {
	Chest     entities.Chest
	Available bool
	// Remaining is zero when Available
	Remaining time.Duration
}

// ChestStatuses reports availability and remaining cooldown for every chest
func (e *Engine) ChestStatuses() []ChestStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	out := make([]ChestStatus, 0, len(entities.ChestTypes))
	for _, ct := range entities.ChestTypes {
		chest := e.chests[ct].Clone()
		status := ChestStatus{Chest: chest, Available: chest.IsAvailable(now)}
		if !status.Available {
			status.Remaining = chest.NextAvailableAt(now).Sub(now)
		}
		out = append(out, status)
	}
	return out
}
