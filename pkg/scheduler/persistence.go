package scheduler

import (
	"context"
	"time"

	"github.com/fadedpez/onexrace/internal/logging"
)

// Flusher saves pending state. economy.Engine implements it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// PersistenceScheduler periodically retries saves that failed during gameplay
type PersistenceScheduler struct {
	scheduler *Scheduler
	flusher   Flusher
}

// NewPersistenceScheduler creates a scheduler that calls Flush every interval
func NewPersistenceScheduler(flusher Flusher, interval time.Duration, logger *logging.Logger) *PersistenceScheduler {
	s := &PersistenceScheduler{
		scheduler: NewScheduler(logger),
		flusher:   flusher,
	}
	s.scheduler.AddTask("persist_retry", interval, s.flush)
	return s
}

// Start starts the retry loop
func (s *PersistenceScheduler) Start(ctx context.Context) {
	s.scheduler.Start(ctx)
}

// Stop stops the retry loop
func (s *PersistenceScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *PersistenceScheduler) flush(ctx context.Context) error {
	return s.flusher.Flush(ctx)
}
