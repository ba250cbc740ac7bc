// Package snapshot
package snapshot

import (
	"sync"
	"time"

	"syspulse/internal/domain"
)

// Store keeps the most recent value of T. Last write wins.
type Store[T any] struct {
	mu   sync.RWMutex
	data T
}

func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.data = v
	s.mu.Unlock()
}

func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Cycle is the outcome of one sampling pass.
type Cycle struct {
	Metrics     []domain.Metric
	CollectedAt time.Time
}

type MetricsStore struct {
	Store[Cycle]
}

func NewMetricsStore() *MetricsStore {
	return &MetricsStore{}
}
