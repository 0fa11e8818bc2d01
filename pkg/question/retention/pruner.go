package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"askboard-hq/askboard/pkg/question/storage"
)

// DefaultSchedule is the cron expression for the daily retention trigger:
// midnight, local wall clock in the display timezone.
const DefaultSchedule = "0 0 * * *"

// DefaultLocation returns the default display timezone (UTC+9).
//
// A fixed-offset zone is used deliberately: the board's day boundary is a
// wall-clock rule, not a tzdata lookup, so the binary needs no zoneinfo.
func DefaultLocation() *time.Location {
	return time.FixedZone("UTC+9", 9*60*60)
}

// Pruner removes stale question records from the store.
type Pruner struct {
	storage  storage.Storage
	location *time.Location
	logger   *slog.Logger
}

// NewPruner creates a new retention pruner. If location is nil the default
// display timezone is used.
func NewPruner(store storage.Storage, location *time.Location) *Pruner {
	if location == nil {
		location = DefaultLocation()
	}

	return &Pruner{
		storage:  store,
		location: location,
		logger:   slog.Default().With("component", "question.retention"),
	}
}

// Location returns the display timezone the day boundary is computed in.
func (p *Pruner) Location() *time.Location {
	return p.location
}

// Cutoff returns the staleness boundary for the given instant: the start of
// now's civil day in the display timezone, converted to UTC.
func (p *Pruner) Cutoff(now time.Time) time.Time {
	local := now.In(p.location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.location)
	return midnight.UTC()
}

// Prune deletes every question created strictly before the cutoff derived
// from now, and returns the number deleted.
//
// Prune never swallows storage errors; a failed pass leaves the store
// untouched from the caller's perspective and the same cutoff is retried by
// the next trigger.
func (p *Pruner) Prune(ctx context.Context, now time.Time) (int64, error) {
	cutoff := p.Cutoff(now)

	deleted, err := p.storage.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune before %s failed: %w", cutoff.Format(time.RFC3339), err)
	}

	if deleted > 0 {
		p.logger.Info("pruned stale questions",
			"deleted_count", deleted,
			"cutoff", cutoff.Format(time.RFC3339),
		)
	} else {
		p.logger.Debug("no stale questions",
			"cutoff", cutoff.Format(time.RFC3339),
		)
	}

	return deleted, nil
}
