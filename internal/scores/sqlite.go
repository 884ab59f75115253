package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteBackend persists the leaderboard in a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend creates or opens a SQLite database at the given path.
// It expands a leading ~, creates the parent directories, and runs
// migrations.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	b := &SQLiteBackend{db: db}

	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}

	return b, nil
}

// migrate creates the database schema if it doesn't exist.
func (b *SQLiteBackend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC, id ASC);
	`

	_, err := b.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Load reads the full leaderboard in rank order.
func (b *SQLiteBackend) Load() ([]Entry, error) {
	rows, err := b.db.Query(
		`SELECT name, score
		 FROM high_scores
		 ORDER BY score DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}

	return entries, nil
}

// Save replaces the stored leaderboard with the given entries, keeping
// their order, in a single transaction.
func (b *SQLiteBackend) Save(entries []Entry) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("scores: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("scores: cannot clear leaderboard: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO high_scores (name, score) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("scores: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Name, e.Score); err != nil {
			return fmt.Errorf("scores: cannot save entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scores: cannot commit leaderboard: %w", err)
	}
	return nil
}
