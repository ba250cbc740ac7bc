package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"syspulse/internal/domain"
)

var ErrNotConnected = errors.New("sqlite: not connected")

const insertMetricQuery = `INSERT INTO metrics (component, metric, value, unit, timestamp) VALUES (?, ?, ?, ?, ?)`

type MetricsRepository struct {
	db *sql.DB
}

func NewMetricsRepository(db *sql.DB) domain.MetricsRepository {
	return &MetricsRepository{db: db}
}

// Insert writes one metric row. All values are bound by position, never
// concatenated into the SQL text, and the driver copies text parameters, so
// the metric does not need to outlive the call. A failed insert leaves the
// connection usable for the next one.
func (r *MetricsRepository) Insert(ctx context.Context, m domain.Metric) error {
	if r.db == nil {
		return ErrNotConnected
	}

	_, err := r.db.ExecContext(ctx, insertMetricQuery,
		m.Component,
		m.Name,
		m.Value,
		m.Unit,
		m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert metric: %w", err)
	}

	return nil
}

// Close releases the underlying connection. Called exactly once, on
// teardown.
func (r *MetricsRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
