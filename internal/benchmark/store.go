package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store defines the interface for storing benchmark sessions.
type Store interface {
	Save(session Session) error
	LoadLatest() (*Session, error)
	LoadAll() ([]Session, error)
	Close() error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(session Session) error {
	sessions, err := s.LoadAll()
	if err != nil {
		return err
	}

	sessions = append(sessions, session)

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) LoadAll() ([]Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Session{}, nil
		}
		return nil, err
	}

	var sessions []Session
	if len(data) == 0 {
		return []Session{}, nil
	}

	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})

	return sessions, nil
}

func (s *FileStore) LoadLatest() (*Session, error) {
	sessions, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[len(sessions)-1], nil
}

// Close is a no-op; the file is rewritten on every Save.
func (s *FileStore) Close() error {
	return nil
}
