package economy

import (
	"math/rand"
	"time"

	"github.com/fadedpez/onexrace/internal/logging"
	"github.com/fadedpez/onexrace/pkg/repositories/ledger"
	"github.com/fadedpez/onexrace/pkg/services/achievements"
	"github.com/fadedpez/onexrace/pkg/services/stories"
)

// Rand picks the race winner. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithRand replaces the random source used to draw winners
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithLocation sets the time zone whose calendar days the daily-play tracker counts
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.loc = loc
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLedger records every coin movement in repo
func WithLedger(repo ledger.Repository) Option {
	return func(e *Engine) {
		e.ledger = repo
	}
}

// WithCatalog replaces the story catalog
func WithCatalog(catalog *stories.Catalog) Option {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithEvaluator replaces the achievement rules
func WithEvaluator(evaluator *achievements.Evaluator) Option {
	return func(e *Engine) {
		e.evaluator = evaluator
	}
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
