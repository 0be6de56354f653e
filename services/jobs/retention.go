package jobs

import (
	"context"
	"facttech_landing_go/config"
	"facttech_landing_go/services"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler schedules the attempt log pruning on cfg.PruneSchedule in
// cfg.Timezone. The returned cron must be stopped on shutdown.
func StartScheduler(database *gorm.DB, cfg *config.Config) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[WARNING] Unknown TIMEZONE %q, using UTC", cfg.Timezone)
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.PruneSchedule, func() {
		PruneExpiredSubmissions(context.Background(), database, cfg.LogRetention, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid PRUNE_SCHEDULE %q: %w", cfg.PruneSchedule, err)
	}

	c.Start()
	log.Printf("[CRON] Attempt log pruning scheduled (%s, keeping %s)", cfg.PruneSchedule, cfg.LogRetention)
	return c, nil
}

// PruneExpiredSubmissions removes attempts older than retention, measured from now
func PruneExpiredSubmissions(ctx context.Context, database *gorm.DB, retention time.Duration, now time.Time) int64 {
	removed, err := services.PruneSubmissions(ctx, database, now.Add(-retention))
	if err != nil {
		log.Printf("[JOB] Error pruning submissions: %v", err)
		return 0
	}
	if removed > 0 {
		log.Printf("[JOB] Pruned %d submissions older than %s", removed, retention)
	}
	return removed
}
