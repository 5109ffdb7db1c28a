package state

// Package state persists the change fingerprint between runs. The store
// is written only after successful delivery, so a failed send retries
// with the same content on the next run.

import (
	"fmt"
	"os"
	"strings"
)

// Store keeps the last delivered fingerprint.
type Store interface {
	// Load returns the persisted fingerprint, or "" when none exists.
	Load() (string, error)
	// Save overwrites the persisted fingerprint.
	Save(fingerprint string) error
}

// FileStore keeps the fingerprint in a single plain-text file.
type FileStore struct {
	path string
}

// NewFileStore builds a store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read fingerprint file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(fingerprint string) error {
	if err := os.WriteFile(s.path, []byte(fingerprint), 0o644); err != nil {
		return fmt.Errorf("write fingerprint file: %w", err)
	}
	return nil
}
