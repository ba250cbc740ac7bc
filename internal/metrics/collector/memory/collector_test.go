package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"

	"syspulse/internal/logger"
)

func TestCollectPassthrough(t *testing.T) {
	loads := []float64{0, 12.25, 50, 87.654321, 100}

	for _, load := range loads {
		c := NewCollector(logger.NewNop())
		c.read = func() (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{UsedPercent: load}, nil
		}

		// No call-order dependence: every call reports the same load.
		for call := 0; call < 3; call++ {
			m, err := c.Collect(context.Background())
			if err != nil {
				t.Fatalf("load %f call %d: unexpected error: %v", load, call, err)
			}
			if m == nil {
				t.Fatalf("load %f call %d: expected a metric", load, call)
			}
			if m.Value != load {
				t.Errorf("load %f call %d: got value %f", load, call, m.Value)
			}
			if m.Component != "RAM" || m.Name != "Usage" || m.Unit != "%" {
				t.Errorf("metric identity: got %q/%q/%q", m.Component, m.Name, m.Unit)
			}
		}
	}
}

func TestCollectReadError(t *testing.T) {
	readErr := errors.New("sysinfo failed")
	c := NewCollector(logger.NewNop())
	c.read = func() (*mem.VirtualMemoryStat, error) { return nil, readErr }

	m, err := c.Collect(context.Background())
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if m != nil {
		t.Fatalf("no metric expected on failure, got %+v", m)
	}
}

func TestCollectRejectsNonFiniteLoad(t *testing.T) {
	for _, load := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := NewCollector(logger.NewNop())
		c.read = func() (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{UsedPercent: load}, nil
		}

		m, err := c.Collect(context.Background())
		if err == nil {
			t.Errorf("load %f: expected an error", load)
		}
		if m != nil {
			t.Errorf("load %f: no metric expected, got %+v", load, m)
		}
	}
}
