// Package storage provides SQLite-based persistence for estimation runs.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SIZMW/bayesian-network/results"
)

// Store handles SQLite database operations for estimation run history.
type Store struct {
	db *sql.DB
}

// Run is one persisted estimation run record.
type Run struct {
	ID          string    `json:"id"`
	Model       string    `json:"model"`
	Algorithm   string    `json:"algorithm"`
	Draws       int       `json:"draws"`
	Seed        int64     `json:"seed"`
	Probability float64   `json:"probability"`
	Consistent  int       `json:"consistent"`
	TotalWeight float64   `json:"total_weight"`
	CreatedAt   time.Time `json:"created_at"`
}

// Open creates a Store backed by the database at the given path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		draws INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		probability REAL NOT NULL,
		consistent INTEGER DEFAULT 0,
		total_weight REAL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a successful estimation result.
func (s *Store) SaveRun(ctx context.Context, r *results.Results) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, model, algorithm, draws, seed, probability, consistent, total_weight, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Metadata.RunID, r.Model.Name, r.Metadata.Algorithm,
		r.Estimation.Draws, r.Estimation.Seed, r.Estimation.Probability,
		r.Estimation.Consistent, r.Estimation.TotalWeight, r.Metadata.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// GetRun retrieves a single run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, model, algorithm, draws, seed, probability, consistent, total_weight, created_at
		 FROM runs WHERE id = ?`, id)

	var run Run
	err := row.Scan(&run.ID, &run.Model, &run.Algorithm, &run.Draws, &run.Seed,
		&run.Probability, &run.Consistent, &run.TotalWeight, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first. An empty model
// matches all models; limit <= 0 defaults to 50.
func (s *Store) ListRuns(ctx context.Context, model string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, model, algorithm, draws, seed, probability, consistent, total_weight, created_at
	          FROM runs`
	args := []any{}
	if model != "" {
		query += ` WHERE model = ?`
		args = append(args, model)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Model, &run.Algorithm, &run.Draws, &run.Seed,
			&run.Probability, &run.Consistent, &run.TotalWeight, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
