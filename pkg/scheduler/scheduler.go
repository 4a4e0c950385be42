// Package scheduler runs periodic background jobs of the backend. For now this is the
// cleanup of processing history older than the retention period.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/history_pruner.go -pkg mocks -skip-ensure -fmt goimports . HistoryPruner

// HistoryPruner removes processing records created before the given time
type HistoryPruner interface {
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Params for the scheduler
type Params struct {
	History         HistoryPruner
	Retention       time.Duration // records older than this are removed
	CleanupInterval time.Duration
}

// Scheduler manages periodic history cleanup
type Scheduler struct {
	history         HistoryPruner
	retention       time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler instance, zero values get defaults
func NewScheduler(params Params) *Scheduler {
	if params.Retention == 0 {
		params.Retention = 30 * 24 * time.Hour
	}
	if params.CleanupInterval == 0 {
		params.CleanupInterval = time.Hour
	}
	return &Scheduler{
		history:         params.History,
		retention:       params.Retention,
		cleanupInterval: params.CleanupInterval,
		now:             time.Now,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.cleanupWorker(ctx)

	lgr.Printf("[INFO] scheduler started with cleanup interval %v, retention %v", s.cleanupInterval, s.retention)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start(ctx)
	<-ctx.Done()
	s.Stop()
	return nil
}

// CleanupNow removes expired history records immediately
func (s *Scheduler) CleanupNow(ctx context.Context) (int64, error) {
	before := s.now().Add(-s.retention)
	deleted, err := s.history.Prune(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("prune history before %s: %w", before.Format(time.RFC3339), err)
	}
	return deleted, nil
}

// cleanupWorker removes expired history on start and then on every tick
func (s *Scheduler) cleanupWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	s.performCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.performCleanup(ctx)
		}
	}
}

func (s *Scheduler) performCleanup(ctx context.Context) {
	deleted, err := s.CleanupNow(ctx)
	if err != nil {
		lgr.Printf("[WARN] history cleanup failed: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] history cleanup removed %d records", deleted)
		return
	}
	lgr.Printf("[DEBUG] history cleanup, nothing to remove")
}
