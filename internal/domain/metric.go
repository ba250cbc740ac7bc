// Package domain
package domain

import "context"

// Metric is one sampled measurement. Instances are built fresh each cycle
// by a producer, handed to persistence once, and never mutated.
type Metric struct {
	Component string  `json:"component"`
	Name      string  `json:"metric"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Timestamp int64   `json:"timestamp"`
}

type MetricsRepository interface {
	Insert(ctx context.Context, m Metric) error
	Close() error
}
