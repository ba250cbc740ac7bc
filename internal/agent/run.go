// Package agent
package agent

import (
	"context"
	"time"

	"syspulse/internal/config"
	"syspulse/internal/domain"
	"syspulse/internal/logger"
	"syspulse/internal/storage/snapshot"
)

type MetricsSampler interface {
	Collect(ctx context.Context) []domain.Metric
}

// Runner drives the sampling pipeline: one blocking sample pass, then one
// blocking insert per metric, with no overlap between cycles.
type Runner struct {
	cfg     *config.Config
	log     logger.Logger
	sampler MetricsSampler
	repo    domain.MetricsRepository
	snap    *snapshot.MetricsStore
}

func NewRunner(
	cfg *config.Config,
	log logger.Logger,
	sampler MetricsSampler,
	repo domain.MetricsRepository,
	snap *snapshot.MetricsStore,
) *Runner {
	return &Runner{
		cfg:     cfg,
		log:     log,
		sampler: sampler,
		repo:    repo,
		snap:    snap,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	r.log.Info("sampling loop started", "interval", r.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("sampling loop stopping...")
			return ctx.Err()
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick runs one cycle. A failed insert drops that metric and the cycle
// carries on; nothing here ends the loop.
func (r *Runner) tick(ctx context.Context) {
	metrics := r.sampler.Collect(ctx)

	r.snap.Set(snapshot.Cycle{
		Metrics:     metrics,
		CollectedAt: time.Now().UTC(),
	})

	for _, m := range metrics {
		r.log.Info("metric",
			"component", m.Component,
			"name", m.Name,
			"value", m.Value,
			"unit", m.Unit,
		)

		if err := r.repo.Insert(ctx, m); err != nil {
			r.log.Error("failed to persist metric", "component", m.Component, "error", err)
		}
	}
}
