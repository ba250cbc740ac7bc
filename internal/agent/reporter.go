package agent

import (
	"context"
	"time"

	"syspulse/internal/logger"
	"syspulse/internal/storage/snapshot"
)

// StatusReporter logs the latest sampled cycle at a coarse interval as a
// liveness signal.
type StatusReporter struct {
	interval time.Duration
	log      logger.Logger
	snap     *snapshot.MetricsStore
}

func NewStatusReporter(interval time.Duration, log logger.Logger, snap *snapshot.MetricsStore) *StatusReporter {
	return &StatusReporter{
		interval: interval,
		log:      log,
		snap:     snap,
	}
}

func (s *StatusReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cycle := s.snap.Get()
			if cycle.CollectedAt.IsZero() {
				continue
			}
			s.log.Info("status",
				"metrics", len(cycle.Metrics),
				"collected_at", cycle.CollectedAt,
			)
		}
	}
}
