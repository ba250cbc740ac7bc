// Package memory
package memory

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"syspulse/internal/domain"
	"syspulse/internal/logger"
)

type Collector struct {
	log  logger.Logger
	read func() (*mem.VirtualMemoryStat, error)
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{
		log:  log,
		read: mem.VirtualMemory,
	}
}

// Collect reports the OS-computed physical memory occupancy. The kernel
// already folds caches and reclaim decisions into this percentage, so the
// value may move slowly or plateau; that is the counter's behavior, not a
// sampling artifact. No state is kept between calls.
func (c *Collector) Collect(ctx context.Context) (*domain.Metric, error) {
	stat, err := c.read()
	if err != nil {
		return nil, err
	}

	load := stat.UsedPercent
	if math.IsNaN(load) || math.IsInf(load, 0) {
		return nil, fmt.Errorf("memory load is not finite: %f", load)
	}

	return &domain.Metric{
		Component: "RAM",
		Name:      "Usage",
		Value:     load,
		Unit:      "%",
		Timestamp: time.Now().Unix(),
	}, nil
}
