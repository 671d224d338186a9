package cron

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper is a cache that can drop its expired entries
type Sweeper interface {
	Sweep() int
	Len() int
}

type DashboardCacheJobs struct {
	cache Sweeper
}

func NewDashboardCacheJobs(cache Sweeper) *DashboardCacheJobs {
	return &DashboardCacheJobs{cache: cache}
}

// RegisterJobs adds the sweep job. A zero TTL keeps entries for the process
// lifetime so nothing is registered.
func (j *DashboardCacheJobs) RegisterJobs(scheduler *Scheduler, ttl, interval time.Duration) {
	if ttl <= 0 {
		slog.Info("Dashboard cache has no TTL, sweep job not registered")
		return
	}
	scheduler.AddJob("sweep_dashboard_cache", interval, j.SweepExpired)
}

func (j *DashboardCacheJobs) SweepExpired(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	removed := j.cache.Sweep()
	if removed > 0 {
		slog.Info("Cron: Swept expired dashboards", "removed", removed, "remaining", j.cache.Len())
	}
	return nil
}
