// Package metrics
package metrics

import (
	"context"

	"syspulse/internal/domain"
	"syspulse/internal/logger"
	"syspulse/internal/metrics/collector/cpu"
	"syspulse/internal/metrics/collector/memory"
)

type producer interface {
	Collect(ctx context.Context) (*domain.Metric, error)
}

type Sampler struct {
	cpu    producer
	memory producer
	log    logger.Logger
}

func NewSampler(log logger.Logger) *Sampler {
	return &Sampler{
		cpu:    cpu.NewCollector(log),
		memory: memory.NewCollector(log),
		log:    log,
	}
}

// Collect runs each producer once and returns this cycle's metrics. A
// producer that fails or has nothing to report yet contributes no metric;
// the cycle itself never fails.
func (s *Sampler) Collect(ctx context.Context) []domain.Metric {
	var out []domain.Metric

	if m, err := s.cpu.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "cpu", "error", err)
	} else if m != nil {
		out = append(out, *m)
	}

	if m, err := s.memory.Collect(ctx); err != nil {
		s.log.Error("collector", "name", "memory", "error", err)
	} else if m != nil {
		out = append(out, *m)
	}

	return out
}
