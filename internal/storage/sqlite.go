// Package storage provides SQLite-based persistence for the run-session log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session log.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one finished simulation run.
type SessionEntry struct {
	ID         int64
	SimID      string
	Ticks      uint64
	SimSeconds float64
	Snapshots  int
	CreatedAt  time.Time
}

// SimStats contains aggregated statistics for one simulation.
type SimStats struct {
	SimID        string
	Runs         int
	TotalSeconds float64
	LongestRun   float64
	LastPlayed   time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			sim_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			sim_seconds REAL NOT NULL,
			snapshots INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_sim_id ON sessions(sim_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(sim_id, created_at DESC);
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

// SaveSession records a finished run for the given simulation.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(simID string, ticks uint64, simSeconds float64, snapshots int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (sim_id, ticks, sim_seconds, snapshots) VALUES (?, ?, ?, ?)",
		simID, ticks, simSeconds, snapshots,
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

// RecentSessions retrieves the latest N runs for the given simulation,
// newest first.
func (s *Store) RecentSessions(simID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, sim_id, ticks, sim_seconds, snapshots, created_at
		 FROM sessions
		 WHERE sim_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		simID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SimID, &e.Ticks, &e.SimSeconds, &e.Snapshots, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LongestSession returns the longest run in simulated seconds for the given
// simulation. Returns 0 if no runs exist.
func (s *Store) LongestSession(simID string) (float64, error) {
	var secs sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(sim_seconds) FROM sessions WHERE sim_id = ?",
		simID,
	).Scan(&secs)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest session: %w", err)
	}

	if !secs.Valid {
		return 0, nil
	}

	return secs.Float64, nil
}

// SimStats retrieves aggregated statistics for a specific simulation.
func (s *Store) SimStats(simID string) (*SimStats, error) {
	stats := &SimStats{SimID: simID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(sim_seconds), 0), COALESCE(MAX(sim_seconds), 0)
		 FROM sessions WHERE sim_id = ?`,
		simID,
	).Scan(&stats.Runs, &stats.TotalSeconds, &stats.LongestRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get sim stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE sim_id = ? ORDER BY created_at DESC LIMIT 1`,
		simID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// ClearSessions deletes all recorded runs for the given simulation.
func (s *Store) ClearSessions(simID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE sim_id = ?", simID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseCreatedAt handles the datetime as either time.Time or string,
// depending on what the driver hands back.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
