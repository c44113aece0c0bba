// Package history persists scan results in a local SQLite database so past
// classifications can be listed and re-displayed. The scan pipeline itself
// never reads from it.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reynard-tools/tesla-scan/pkg/model"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a scan id does not exist.
var ErrNotFound = errors.New("history: scan not found")

// Entry is a stored scan summary.
type Entry struct {
	ID           int64   `json:"id"`
	Root         string  `json:"root"`
	Source       string  `json:"source"`
	Points       int     `json:"points"`
	Level        int     `json:"level"`
	LevelName    string  `json:"level_name"`
	Percentage   float64 `json:"percentage"`
	PatternCount int     `json:"pattern_count"`
	CreatedAt    string  `json:"created_at"`
}

// Store is the scan history database.
type Store struct {
	db *sql.DB
}

// DefaultDir returns the default data directory for the history database.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tesla-scan")
}

// Open opens (creating if needed) the history database in the given
// directory and runs migrations.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scans (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			root          TEXT    NOT NULL,
			source        TEXT    NOT NULL,
			points        INTEGER NOT NULL,
			level         INTEGER NOT NULL,
			level_name    TEXT    NOT NULL,
			percentage    REAL    NOT NULL,
			pattern_count INTEGER NOT NULL,
			report        TEXT    NOT NULL,
			created_at    TEXT    NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_scans_created ON scans(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_scans_root    ON scans(root);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save persists an analysis and returns the new scan id.
func (s *Store) Save(root, source string, a *model.Analysis) (int64, error) {
	report, err := json.Marshal(a)
	if err != nil {
		return 0, fmt.Errorf("history: encode report: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO scans (root, source, points, level, level_name, percentage, pattern_count, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		root, source, a.PointsAchieved, a.CurrentLevel, a.LevelName,
		a.AutonomyPercentage, len(a.Patterns), string(report),
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert scan: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent scans, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, root, source, points, level, level_name, percentage, pattern_count, created_at
		FROM scans ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list scans: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Root, &e.Source, &e.Points, &e.Level,
			&e.LevelName, &e.Percentage, &e.PatternCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns a stored scan summary and its full analysis report.
func (s *Store) Get(id int64) (*Entry, *model.Analysis, error) {
	var (
		e      Entry
		report string
	)
	err := s.db.QueryRow(`
		SELECT id, root, source, points, level, level_name, percentage, pattern_count, report, created_at
		FROM scans WHERE id = ?`, id).
		Scan(&e.ID, &e.Root, &e.Source, &e.Points, &e.Level, &e.LevelName,
			&e.Percentage, &e.PatternCount, &report, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("history: get scan %d: %w", id, err)
	}

	var a model.Analysis
	if err := json.Unmarshal([]byte(report), &a); err != nil {
		return nil, nil, fmt.Errorf("history: decode report %d: %w", id, err)
	}
	return &e, &a, nil
}

// Prune deletes all but the most recent keep scans and reports how many
// rows were removed.
func (s *Store) Prune(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.Exec(`
		DELETE FROM scans WHERE id NOT IN (
			SELECT id FROM scans ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("history: prune: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
