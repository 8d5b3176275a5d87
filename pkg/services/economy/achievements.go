package economy

import (
	"context"
	"strconv"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
)

// Evaluate submits event to the achievement rules, unlocking and paying out
// every locked achievement it satisfies. It persists only if something unlocked.
func (e *Engine) Evaluate(ctx context.Context, event entities.AchievementEvent) ([]entities.Achievement, error) {
	if event.Kind < entities.EventFirstWin || event.Kind > entities.EventDailyPlayer {
		return nil, types.InvalidArgument("unknown achievement event %s", event.Kind)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	unlocked := e.evaluate(ctx, event)
	if len(unlocked) > 0 {
		e.persist(ctx)
	}
	return unlocked, nil
}

// evaluate applies event without persisting. Callers hold the lock.
func (e *Engine) evaluate(ctx context.Context, event entities.AchievementEvent) []entities.Achievement {
	ids := e.evaluator.Match(event, e.isUnlocked)
	if len(ids) == 0 {
		return nil
	}

	unlocked := make([]entities.Achievement, 0, len(ids))
	for _, id := range ids {
		idx := e.achievementIndex(id)
		if idx < 0 || e.achievements[idx].IsUnlocked {
			continue
		}

		e.achievements[idx].IsUnlocked = true
		a := e.achievements[idx]
		if err := e.wallet.AddFunds(ctx, a.Reward, entities.TransactionTypeAchievement, strconv.Itoa(a.ID), a.Title); err != nil {
			// rewards are never negative
			e.logger.LogError(err)
		}

		e.logger.Info("Achievement unlocked: %s (+%d) on %s", a.Title, a.Reward, event)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

func (e *Engine) isUnlocked(id int) bool {
	idx := e.achievementIndex(id)
	return idx >= 0 && e.achievements[idx].IsUnlocked
}

func (e *Engine) achievementIndex(id int) int {
	for i := range e.achievements {
		if e.achievements[i].ID == id {
			return i
		}
	}
	return -1
}
