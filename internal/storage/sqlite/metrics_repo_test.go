package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"syspulse/internal/domain"
	"syspulse/internal/logger"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewSqliteDB(filepath.Join(t.TempDir(), "syspulse.db"), logger.NewNop())
	if err != nil {
		t.Fatalf("NewSqliteDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM metrics`).Scan(&n); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	return n
}

func TestSchemaIdempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syspulse.db")

	// Opening the same file repeatedly must leave exactly one metrics table
	// and never error.
	for i := 0; i < 3; i++ {
		db, err := NewSqliteDB(path, logger.NewNop())
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}

		for j := 0; j < 3; j++ {
			if err := runMigration(db); err != nil {
				t.Fatalf("open %d migration %d: %v", i, j, err)
			}
		}

		var tables int
		err = db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'metrics'`,
		).Scan(&tables)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if tables != 1 {
			t.Fatalf("open %d: got %d metrics tables, want 1", i, tables)
		}

		db.Close()
	}
}

func TestInsertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewMetricsRepository(db)

	// Hostile field content must persist as literal bytes and never reach
	// the SQL text.
	m := domain.Metric{
		Component: `CPU'); DROP TABLE metrics; --`,
		Name:      `Usage"; DELETE FROM metrics`,
		Value:     57.142857,
		Unit:      `%' OR '1'='1`,
		Timestamp: 1767398400,
	}

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var got domain.Metric
	err := db.QueryRow(
		`SELECT component, metric, value, unit, timestamp FROM metrics`,
	).Scan(&got.Component, &got.Name, &got.Value, &got.Unit, &got.Timestamp)
	if err != nil {
		t.Fatalf("reading row back: %v", err)
	}
	if got != m {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", got, m)
	}

	// Table structure must have survived the hostile strings.
	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if n := countRows(t, db); n != 2 {
		t.Errorf("got %d rows, want 2", n)
	}
}

func TestPersistenceCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewMetricsRepository(db)

	const k = 7
	for i := 0; i < k; i++ {
		m := domain.Metric{
			Component: "CPU",
			Name:      "Usage",
			Value:     float64(i),
			Unit:      "%",
			Timestamp: int64(1767398400 + i),
		}
		if err := repo.Insert(context.Background(), m); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	if n := countRows(t, db); n != k {
		t.Fatalf("got %d rows, want %d", n, k)
	}

	rows, err := db.Query(`SELECT value, timestamp FROM metrics ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var value float64
		var ts int64
		if err := rows.Scan(&value, &ts); err != nil {
			t.Fatalf("scan %d: %v", i, err)
		}
		if value != float64(i) || ts != int64(1767398400+i) {
			t.Errorf("row %d: got (%f, %d)", i, value, ts)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
}

func TestInsertNotConnected(t *testing.T) {
	repo := NewMetricsRepository(nil)

	err := repo.Insert(context.Background(), domain.Metric{Component: "CPU"})
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("got %v, want ErrNotConnected", err)
	}

	if err := repo.Close(); err != nil {
		t.Fatalf("Close on unopened repository: %v", err)
	}
}

func TestFailureIsolation(t *testing.T) {
	db := openTestDB(t)
	repo := NewMetricsRepository(db)

	m := domain.Metric{Component: "RAM", Name: "Usage", Value: 40, Unit: "%", Timestamp: 1767398400}

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// Break the schema out from under the repository so the next insert
	// fails at execution.
	if _, err := db.Exec(`DROP TABLE metrics`); err != nil {
		t.Fatalf("dropping table: %v", err)
	}
	if err := repo.Insert(context.Background(), m); err == nil {
		t.Fatal("insert against a missing table must fail")
	}

	// The connection itself must still work.
	if err := runMigration(db); err != nil {
		t.Fatalf("re-migrating: %v", err)
	}
	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("insert after recovery: %v", err)
	}
	if n := countRows(t, db); n != 1 {
		t.Errorf("got %d rows after recovery, want 1", n)
	}
}

func TestInsertAfterClose(t *testing.T) {
	db, err := NewSqliteDB(filepath.Join(t.TempDir(), "syspulse.db"), logger.NewNop())
	if err != nil {
		t.Fatalf("NewSqliteDB: %v", err)
	}

	repo := NewMetricsRepository(db)
	if err := repo.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := repo.Insert(context.Background(), domain.Metric{Component: "CPU"}); err == nil {
		t.Fatal("insert after close must fail")
	}
}
