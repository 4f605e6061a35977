// Package storage provides SQLite-based persistence for session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only summaries are journaled; grid contents are never stored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord summarises one finished viewer run.
type SessionRecord struct {
	ID              int64
	StartedAt       time.Time
	Duration        time.Duration
	Generations     uint64
	PeakPopulation  int
	FinalPopulation int
	Spawns          int
	RandomMode      bool
	Rows            int
	Cols            int
}

// Summary aggregates all recorded sessions.
type Summary struct {
	Sessions         int
	TotalGenerations int64
	BestPeak         int
	LongestRun       time.Duration
	LastPlayed       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			generations INTEGER NOT NULL DEFAULT 0,
			peak_population INTEGER NOT NULL DEFAULT 0,
			final_population INTEGER NOT NULL DEFAULT 0,
			spawns INTEGER NOT NULL DEFAULT 0,
			random_mode INTEGER NOT NULL DEFAULT 0,
			grid_rows INTEGER NOT NULL DEFAULT 0,
			grid_cols INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (started_at, duration_ms, generations, peak_population, final_population, spawns, random_mode, grid_rows, grid_cols)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UnixMilli(),
		rec.Duration.Milliseconds(),
		int64(rec.Generations),
		rec.PeakPopulation,
		rec.FinalPopulation,
		rec.Spawns,
		rec.RandomMode,
		rec.Rows,
		rec.Cols,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, duration_ms, generations, peak_population,
		        final_population, spawns, random_mode, grid_rows, grid_cols
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec        SessionRecord
			startedAt  int64
			durationMS int64
			gens       int64
		)
		if err := rows.Scan(
			&rec.ID,
			&startedAt,
			&durationMS,
			&gens,
			&rec.PeakPopulation,
			&rec.FinalPopulation,
			&rec.Spawns,
			&rec.RandomMode,
			&rec.Rows,
			&rec.Cols,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.StartedAt = time.UnixMilli(startedAt)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.Generations = uint64(gens)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary retrieves aggregated statistics over all sessions.
func (s *Store) Summary() (*Summary, error) {
	var (
		sum        Summary
		longestMS  int64
		lastPlayed sql.NullInt64
	)

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(generations), 0), COALESCE(MAX(peak_population), 0),
		        COALESCE(MAX(duration_ms), 0), MAX(started_at)
		 FROM sessions`,
	).Scan(&sum.Sessions, &sum.TotalGenerations, &sum.BestPeak, &longestMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}

	sum.LongestRun = time.Duration(longestMS) * time.Millisecond
	if lastPlayed.Valid {
		sum.LastPlayed = time.UnixMilli(lastPlayed.Int64)
	}

	return &sum, nil
}

// ClearSessions deletes every recorded session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
