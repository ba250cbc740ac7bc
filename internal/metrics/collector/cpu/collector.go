// Package cpu
package cpu

import (
	"context"
	"time"

	"syspulse/internal/domain"
	"syspulse/internal/logger"
)

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:  log,
		read: readTicks,
	}
}

// Collect reads the cumulative counters and differences them against the
// previous reading. The OS never reports an instantaneous load; only the
// delta between two snapshots yields a rate, so the first successful call
// only establishes the baseline and returns (nil, nil). Callers treat a nil
// metric with a nil error as "nothing to report this cycle".
func (c *Collector) Collect(ctx context.Context) (*domain.Metric, error) {
	now, err := c.read()
	if err != nil {
		return nil, err
	}

	if c.lastIdle == 0 && c.lastKernel == 0 && c.lastUser == 0 {
		c.lastIdle, c.lastKernel, c.lastUser = now.idle, now.kernel, now.user
		c.log.Debug("cpu baseline established")
		return nil, nil
	}

	deltaIdle := now.idle - c.lastIdle
	deltaKernel := now.kernel - c.lastKernel
	deltaUser := now.user - c.lastUser

	// The new reading becomes the next call's baseline no matter what the
	// deltas turn out to be.
	c.lastIdle, c.lastKernel, c.lastUser = now.idle, now.kernel, now.user

	var value float64
	if total := deltaKernel + deltaUser; total > 0 {
		value = (1.0 - float64(deltaIdle)/float64(total)) * 100.0
	}

	return &domain.Metric{
		Component: "CPU",
		Name:      "Usage",
		Value:     value,
		Unit:      "%",
		Timestamp: time.Now().Unix(),
	}, nil
}
