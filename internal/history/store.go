// Package history keeps a DuckDB log of completed refresh cycles.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

var schema = []string{
	`CREATE SEQUENCE IF NOT EXISTS refresh_cycles_seq`,
	`CREATE TABLE IF NOT EXISTS refresh_cycles (
	id          BIGINT PRIMARY KEY DEFAULT nextval('refresh_cycles_seq'),
	started_at  TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	duration_ms BIGINT NOT NULL,
	ok          BOOLEAN NOT NULL,
	error       VARCHAR,
	cpu_pct     DOUBLE,
	ram_pct     DOUBLE
	)`,
}

// Cycle is one pull that reached Refreshing and was later completed.
type Cycle struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	OK         bool
	Err        string
	CPUPct     float64
	RAMPct     float64
}

func (c Cycle) Duration() time.Duration {
	return c.FinishedAt.Sub(c.StartedAt)
}

// Recorder is the part of Store the UI depends on.
type Recorder interface {
	Record(ctx context.Context, c Cycle) error
	Recent(ctx context.Context, n int) ([]Cycle, error)
}

type storeConfig struct {
	threads int
	timeout time.Duration
}

// Option configures the store.
type Option func(*storeConfig)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) Option {
	return func(c *storeConfig) {
		c.threads = n
	}
}

// WithTimeout bounds the open/migrate step.
func WithTimeout(d time.Duration) Option {
	return func(c *storeConfig) {
		c.timeout = d
	}
}

// Store persists cycles in DuckDB.
type Store struct {
	db *sql.DB
}

// Open connects to dsn and creates the schema. An empty dsn or ":memory:"
// opens an in-memory database.
func Open(dsn string, opts ...Option) (*Store, error) {
	cfg := storeConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	// Every connection to ":memory:" would be a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	if cfg.threads > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA threads=%d", cfg.threads)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting threads: %w", err)
		}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Record inserts c and ignores c.ID.
func (s *Store) Record(ctx context.Context, c Cycle) error {
	if s.db == nil {
		return errors.New("history store is closed")
	}
	if c.FinishedAt.Before(c.StartedAt) {
		return fmt.Errorf("cycle finishes before it starts: %s < %s", c.FinishedAt, c.StartedAt)
	}

	var errText sql.NullString
	if c.Err != "" {
		errText = sql.NullString{String: c.Err, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO refresh_cycles (started_at, finished_at, duration_ms, ok, error, cpu_pct, ram_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.StartedAt.UTC(), c.FinishedAt.UTC(), c.Duration().Milliseconds(), c.OK, errText, c.CPUPct, c.RAMPct,
	)
	if err != nil {
		return fmt.Errorf("recording refresh cycle: %w", err)
	}
	return nil
}

// Recent returns up to n cycles, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Cycle, error) {
	if s.db == nil {
		return nil, errors.New("history store is closed")
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, started_at, finished_at, ok, error, cpu_pct, ram_pct
		FROM refresh_cycles
		ORDER BY started_at DESC, id DESC
		LIMIT %d`, n))
	if err != nil {
		return nil, fmt.Errorf("querying refresh cycles: %w", err)
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		var (
			c       Cycle
			errText sql.NullString
			cpu     sql.NullFloat64
			ram     sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.StartedAt, &c.FinishedAt, &c.OK, &errText, &cpu, &ram); err != nil {
			return nil, fmt.Errorf("scanning refresh cycle: %w", err)
		}
		c.Err = errText.String
		c.CPUPct = cpu.Float64
		c.RAMPct = ram.Float64
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// Count returns the number of recorded cycles.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, errors.New("history store is closed")
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM refresh_cycles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting refresh cycles: %w", err)
	}
	return n, nil
}

// Close releases database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
