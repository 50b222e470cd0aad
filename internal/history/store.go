// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records finished plan runs in a local SQLite
// database so past calendars can be listed and re-read.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/pdiddy/content-planner/pkg/types"
)

const dbFile = "plans.db"

// Record summarizes one stored run.
type Record struct {
	// ID is the run's ULID; lexical order is creation order.
	ID string `json:"id" yaml:"id"`

	// Theme is the request theme.
	Theme string `json:"theme" yaml:"theme"`

	// Days is the requested day count.
	Days int `json:"days" yaml:"days"`

	// Backend names the generation variant that produced the run.
	Backend string `json:"backend" yaml:"backend"`

	// CreatedAt is the completion time of the run.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the database at cfg.DataDir/plans.db and
// bootstraps the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS plans (
			id TEXT PRIMARY KEY,
			theme TEXT NOT NULL,
			days INTEGER NOT NULL,
			backend TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS plan_entries (
			plan_id TEXT NOT NULL REFERENCES plans(id),
			day INTEGER NOT NULL,
			topic TEXT NOT NULL,
			caption TEXT NOT NULL,
			hashtags TEXT NOT NULL,
			PRIMARY KEY (plan_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_created_at ON plans(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a finished plan under a fresh ULID and returns the id.
func (s *Store) Record(ctx context.Context, plan *types.Plan, backend string) (string, error) {
	id := ulid.Make().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO plans (id, theme, days, backend, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, plan.Theme, plan.Days, backend, now.Format(time.RFC3339),
	); err != nil {
		return "", fmt.Errorf("inserting plan: %w", err)
	}

	for _, e := range plan.Entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO plan_entries (plan_id, day, topic, caption, hashtags) VALUES (?, ?, ?, ?, ?)`,
			id, e.Day, e.Topic, e.Caption, e.Hashtags,
		); err != nil {
			return "", fmt.Errorf("inserting day %d: %w", e.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing plan: %w", err)
	}
	return id, nil
}

// List returns stored runs, newest first, capped at the configured
// maximum.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, theme, days, backend, created_at FROM plans
		 ORDER BY created_at DESC, id DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var created string
		if err := rows.Scan(&r.ID, &r.Theme, &r.Days, &r.Backend, &created); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Get loads one stored run and its full entry set.
func (s *Store) Get(ctx context.Context, id string) (*types.Plan, *Record, error) {
	var rec Record
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, theme, days, backend, created_at FROM plans WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Theme, &rec.Days, &rec.Backend, &created)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("plan %s not found", id)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying plan %s: %w", id, err)
	}
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		rec.CreatedAt = t
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT day, topic, caption, hashtags FROM plan_entries WHERE plan_id = ? ORDER BY day`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("querying entries for %s: %w", id, err)
	}
	defer rows.Close()

	plan := &types.Plan{Theme: rec.Theme, Days: rec.Days}
	for rows.Next() {
		var e types.ContentEntry
		if err := rows.Scan(&e.Day, &e.Topic, &e.Caption, &e.Hashtags); err != nil {
			return nil, nil, fmt.Errorf("scanning entry row: %w", err)
		}
		plan.Entries = append(plan.Entries, e)
		plan.Topics = append(plan.Topics, e.Topic)
	}
	return plan, &rec, rows.Err()
}

// Sink adapts the store to the pipeline's Save stage, tagging each
// stored run with the backend that produced it.
type Sink struct {
	store   *Store
	backend string
}

// SinkFor returns a pipeline sink writing into the store.
func (s *Store) SinkFor(backend string) *Sink {
	return &Sink{store: s, backend: backend}
}

// Save records the plan; the generated id is discarded here, callers
// that need it use Record directly.
func (s *Sink) Save(ctx context.Context, plan *types.Plan) error {
	_, err := s.store.Record(ctx, plan, s.backend)
	return err
}
