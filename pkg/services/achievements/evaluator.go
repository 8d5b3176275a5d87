package achievements

import (
	"github.com/fadedpez/onexrace/pkg/entities"
)

// Evaluator decides which locked achievements an event unlocks. It holds no
// unlock state of its own; the caller owns the unlocked set and the wallet.
type Evaluator struct {
	byKind map[entities.EventKind][]Rule
}

// NewEvaluator indexes rules by event kind, preserving their order
func NewEvaluator(rules []Rule) *Evaluator {
	e := &Evaluator{byKind: make(map[entities.EventKind][]Rule)}
	for _, r := range rules {
		e.byKind[r.Kind] = append(e.byKind[r.Kind], r)
	}
	return e
}

// NewDefaultEvaluator uses DefaultRules
func NewDefaultEvaluator() *Evaluator {
	return NewEvaluator(DefaultRules())
}

// Match returns the ids of achievements that event unlocks, skipping any
// for which isUnlocked returns true
func (e *Evaluator) Match(event entities.AchievementEvent, isUnlocked func(id int) bool) []int {
	var ids []int
	for _, rule := range e.byKind[event.Kind] {
		if isUnlocked(rule.AchievementID) {
			continue
		}
		if rule.Matches(event.Value) {
			ids = append(ids, rule.AchievementID)
		}
	}
	return ids
}
