package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	sessionStore
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{sessionStore: sessionStore{
		db:           db,
		insertQuery:  `INSERT INTO benchmark_sessions (id, length, failed, created_at, content) VALUES (?, ?, ?, ?, ?)`,
		selectAll:    `SELECT content FROM benchmark_sessions ORDER BY created_at ASC`,
		selectLatest: `SELECT content FROM benchmark_sessions ORDER BY created_at DESC LIMIT 1`,
	}}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS benchmark_sessions (
			id TEXT PRIMARY KEY,
			length INTEGER NOT NULL,
			failed INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL,
			content TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_benchmark_sessions_created ON benchmark_sessions(created_at)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
