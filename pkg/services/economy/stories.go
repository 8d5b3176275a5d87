package economy

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fadedpez/onexrace/internal/types"
	"github.com/fadedpez/onexrace/pkg/entities"
)

// storyCollectorThreshold is the smallest collection size any story rule rewards
const storyCollectorThreshold = 5

// UnlockStory spends price and adds id to the unlocked stories. Insufficient
// funds return false with no change. Buying an already unlocked story still
// spends the price.
func (e *Engine) UnlockStory(ctx context.Context, id int, price int64) (bool, error) {
	if price < 0 {
		return false, types.InvalidArgument("price cannot be negative: %d", price)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.unlockStory(ctx, id, price, fmt.Sprintf("Story #%d", id))
}

// UnlockCatalogStory buys a story from the catalog at its listed price.
// Free stories unlock without spending.
func (e *Engine) UnlockCatalogStory(ctx context.Context, id int) (bool, error) {
	story, ok := e.catalog.ByID(id)
	if !ok {
		return false, types.NewGameError(types.ErrStoryNotFound, fmt.Sprintf("story %d not found", id))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if story.IsFree {
		if _, unlocked := e.stories[id]; !unlocked {
			e.addStory(ctx, id)
			e.persist(ctx)
		}
		return true, nil
	}

	return e.unlockStory(ctx, id, story.Price, story.Title)
}

func (e *Engine) unlockStory(ctx context.Context, id int, price int64, title string) (bool, error) {
	ok, err := e.wallet.RemoveFunds(ctx, price, entities.TransactionTypeStory, strconv.Itoa(id), title)
	if err != nil || !ok {
		return false, err
	}

	e.addStory(ctx, id)
	e.persist(ctx)
	return true, nil
}

// addStory grows the unlocked set and evaluates the collection achievements
func (e *Engine) addStory(ctx context.Context, id int) {
	e.stories[id] = struct{}{}
	if count := int64(len(e.stories)); count >= storyCollectorThreshold {
		e.evaluate(ctx, entities.StoryUnlock(count))
	}
}

// IsStoryUnlocked reports whether id has been unlocked
func (e *Engine) IsStoryUnlocked(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.stories[id]
	return ok
}

// Catalog returns the story catalog the engine sells from
func (e *Engine) Catalog() []entities.Story {
	return e.catalog.All()
}
