// Package storage provides SQLite-based persistence for solver run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/aoc-grids/internal/config"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single recorded answer for one part of one day.
type Run struct {
	ID        int64
	Day       int
	Part      int
	Answer    int
	Duration  time.Duration
	InputSHA  string // hex SHA-256 of the puzzle input
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day INTEGER NOT NULL,
			part INTEGER NOT NULL,
			answer INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			input_sha TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day, id DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_fastest ON runs(day, part, duration_ns);
		CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(day, part, input_sha);
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

// SaveRun records a solved part.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Part != 1 && r.Part != 2 {
		return 0, fmt.Errorf("storage: invalid part %d", r.Part)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (day, part, answer, duration_ns, input_sha) VALUES (?, ?, ?, ?, ?)",
		r.Day, r.Part, r.Answer, r.Duration.Nanoseconds(), r.InputSHA,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs for the given day, newest first.
func (s *Store) RecentRuns(day, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, day, part, answer, duration_ns, input_sha, created_at
		 FROM runs
		 WHERE day = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		day, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationNS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Day, &r.Part, &r.Answer, &durationNS, &r.InputSHA, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationNS)
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestDuration returns the fastest recorded time for a part.
// ok is false when the part has never been run.
func (s *Store) BestDuration(day, part int) (best time.Duration, ok bool, err error) {
	var ns sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ns) FROM runs WHERE day = ? AND part = ?",
		day, part,
	).Scan(&ns)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best duration: %w", err)
	}

	if !ns.Valid {
		return 0, false, nil
	}

	return time.Duration(ns.Int64), true, nil
}

// LastAnswer returns the most recent answer recorded for a part on the given input.
// ok is false when that input has never been solved.
func (s *Store) LastAnswer(day, part int, inputSHA string) (answer int, ok bool, err error) {
	err = s.db.QueryRow(
		`SELECT answer FROM runs
		 WHERE day = ? AND part = ? AND input_sha = ?
		 ORDER BY id DESC LIMIT 1`,
		day, part, inputSHA,
	).Scan(&answer)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query last answer: %w", err)
	}

	return answer, true, nil
}

// ClearRuns deletes all runs for the given day and returns how many were removed.
func (s *Store) ClearRuns(day int) (int64, error) {
	result, err := s.db.Exec("DELETE FROM runs WHERE day = ?", day)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// DayStats contains aggregated statistics for a day.
type DayStats struct {
	Day     int
	Runs    int
	Inputs  int              // distinct inputs solved
	Best    [2]time.Duration // fastest part 1 and part 2, zero if never run
	LastRun time.Time
}

// GetDayStats retrieves aggregated statistics for a specific day.
func (s *Store) GetDayStats(day int) (*DayStats, error) {
	stats := &DayStats{Day: day}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT input_sha) FROM runs WHERE day = ?`,
		day,
	).Scan(&stats.Runs, &stats.Inputs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get day stats: %w", err)
	}

	for part := 1; part <= 2; part++ {
		best, ok, err := s.BestDuration(day, part)
		if err != nil {
			return nil, err
		}
		if ok {
			stats.Best[part-1] = best
		}
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE day = ? ORDER BY id DESC LIMIT 1`,
		day,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTimestamp(lastRun)
	}

	return stats, nil
}

// GetAllDayStats retrieves statistics for every day that has been run.
func (s *Store) GetAllDayStats() (map[int]*DayStats, error) {
	rows, err := s.db.Query(
		`SELECT day, COUNT(*), COUNT(DISTINCT input_sha),
		        COALESCE(MIN(CASE WHEN part = 1 THEN duration_ns END), 0),
		        COALESCE(MIN(CASE WHEN part = 2 THEN duration_ns END), 0),
		        MAX(created_at)
		 FROM runs
		 GROUP BY day`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all day stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]*DayStats)
	for rows.Next() {
		var st DayStats
		var best1, best2 int64
		var lastRun any
		if err := rows.Scan(&st.Day, &st.Runs, &st.Inputs, &best1, &best2, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Best = [2]time.Duration{time.Duration(best1), time.Duration(best2)}
		st.LastRun = parseTimestamp(lastRun)
		stats[st.Day] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string datetime values.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
