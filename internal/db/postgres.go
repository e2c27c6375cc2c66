package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements benchmark.Store using PostgreSQL
type PostgresStore struct {
	sessionStore
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := newPostgresStore(db)
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func newPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sessionStore: sessionStore{
		db:           db,
		insertQuery:  `INSERT INTO benchmark_sessions (id, length, failed, created_at, content) VALUES ($1, $2, $3, $4, $5)`,
		selectAll:    `SELECT content FROM benchmark_sessions ORDER BY created_at ASC`,
		selectLatest: `SELECT content FROM benchmark_sessions ORDER BY created_at DESC LIMIT 1`,
	}}
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS benchmark_sessions (
			id TEXT PRIMARY KEY,
			length INTEGER NOT NULL,
			failed INTEGER NOT NULL DEFAULT 0,
			created_at BIGINT NOT NULL,
			content JSONB NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_benchmark_sessions_created ON benchmark_sessions(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
