// Package store persists accepted attachments to a run-scoped directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FSStore writes attachment bytes to a temporary directory. Files are keyed
// by their derived name and never overwritten; an existing file means an
// earlier run already saved this (sender, filename) pair.
type FSStore struct {
	dir    string
	logger *zap.Logger
}

// NewFSStore creates the store directory if needed
func NewFSStore(dir string, logger *zap.Logger) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return &FSStore{dir: dir, logger: logger}, nil
}

// Save writes the payload under the derived name. saved=false without error
// means the file already existed and the write was skipped.
func (s *FSStore) Save(storedName string, payload []byte) (string, bool, error) {
	path := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write attachment %q: %w", storedName, err)
	}
	s.logger.Debug("Saved attachment", zap.String("path", path))
	return path, true, nil
}
