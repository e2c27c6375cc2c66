package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"listprof/internal/benchmark"
)

// sessionStore persists benchmark sessions as JSON blobs. The SQL dialects
// only differ in their placeholders, so each backend supplies its queries.
type sessionStore struct {
	db           *sql.DB
	insertQuery  string
	selectAll    string
	selectLatest string
}

// Close closes the database connection
func (s *sessionStore) Close() error {
	return s.db.Close()
}

// Save stores a session. Saving the same session id twice fails.
func (s *sessionStore) Save(session benchmark.Session) error {
	content, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	failed := 0
	for _, r := range session.Reports {
		if r.Failed() {
			failed++
		}
	}

	if _, err := s.db.Exec(s.insertQuery, session.ID, session.Length, failed, session.Timestamp.UnixNano(), string(content)); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

// LoadAll returns every session, oldest first.
func (s *sessionStore) LoadAll() ([]benchmark.Session, error) {
	rows, err := s.db.Query(s.selectAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []benchmark.Session{}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		var session benchmark.Session
		if err := json.Unmarshal([]byte(content), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// LoadLatest returns the newest session, or nil when there is none.
func (s *sessionStore) LoadLatest() (*benchmark.Session, error) {
	var content string
	err := s.db.QueryRow(s.selectLatest).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session benchmark.Session
	if err := json.Unmarshal([]byte(content), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}
