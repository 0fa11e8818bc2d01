// Package retention enforces the daily content lifecycle of the question
// board: a question is visible only during the civil day it was created,
// in a fixed display timezone (UTC+9 by default).
//
// # Cutoff
//
// For an observation instant "now", the cutoff is the start of the current
// civil day in the display timezone, converted to UTC. Every record created
// strictly before the cutoff is stale and gets deleted.
//
// # Triggers
//
// Pruning runs from three places:
//
//   - a daily cron job firing at local midnight (Scheduler)
//   - opportunistically before every question request (transport middleware)
//   - implicitly at startup, where the whole store is wiped regardless of age
//
// The opportunistic trigger bounds the staleness window: even if the daily
// job is delayed, no request ever observes a record made stale by the "now"
// it computed.
//
// # Basic Usage
//
//	pruner := retention.NewPruner(store, retention.DefaultLocation())
//	scheduler := retention.NewScheduler(pruner, retention.DefaultSchedule)
//
//	if err := scheduler.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer scheduler.Stop()
//
//	// Manual pass (the middleware does this per request):
//	deleted, err := pruner.Prune(ctx, time.Now())
//
// Prune is idempotent: calling it twice with non-decreasing "now" values
// removes records only on the first call, unless real time has crossed a
// new day boundary in between.
package retention
