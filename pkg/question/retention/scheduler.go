package retention

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the pruner once per day at local midnight in the display
// timezone, using cron syntax.
//
// A process owns at most one active daily job: calling Start again replaces
// the previous registration instead of duplicating it.
type Scheduler struct {
	pruner   *Pruner
	cron     *cron.Cron
	schedule string
	entryID  cron.EntryID
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
	now      func() time.Time

	// OnResult, if set, is invoked after every scheduled firing with the
	// number of records deleted and the firing's error, if any. Used to
	// hook metrics in without coupling this package to the collector.
	OnResult func(deleted int64, err error)
}

// NewScheduler creates a new retention scheduler. The cron runner is bound
// to the pruner's display timezone so the schedule fires on local wall-clock
// time. If schedule is empty, DefaultSchedule is used.
func NewScheduler(pruner *Pruner, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	return &Scheduler{
		pruner:   pruner,
		cron:     cron.New(cron.WithLocation(pruner.Location())),
		schedule: schedule,
		logger:   slog.Default().With("component", "question.scheduler"),
		now:      time.Now,
	}
}

// Start arms the daily trigger. Re-starting replaces the prior registration,
// so at most one daily job is ever active.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	// Replace rather than duplicate on repeated Start.
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
		s.entryID = 0
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runPruning(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", s.schedule,
		"timezone", s.pruner.Location().String(),
	)

	// Stop when the process lifecycle context ends.
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runPruning executes one scheduled retention pass. A failed firing logs and
// waits for the next trigger; it never crashes the scheduler.
func (s *Scheduler) runPruning(ctx context.Context) {
	deleted, err := s.pruner.Prune(ctx, s.now())

	if s.OnResult != nil {
		s.OnResult(deleted, err)
	}

	if err != nil {
		s.logger.Error("scheduled pruning failed", "error", err)
		return
	}

	if deleted > 0 {
		s.logger.Info("scheduled pruning completed", "deleted_count", deleted)
	} else {
		s.logger.Debug("scheduled pruning completed, no records deleted")
	}
}

// Stop cancels the daily trigger without waiting for an in-flight firing.
// A firing already in progress may finish on its own, but no new firing
// starts after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		s.cron.Stop()
		s.running = false
		s.logger.Info("retention scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is armed.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the time of the next scheduled pruning, or nil if the
// scheduler is not armed.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
