package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store accepts raw bytes plus a desired name and returns a stable path.
type Store interface {
	Save(name string, data []byte) (string, error)
}

// LocalStore writes uploads under a configured directory. The directory
// is injected so tests can isolate storage per run.
type LocalStore struct {
	dir    string
	logger *slog.Logger
}

func NewLocalStore(dir string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		return nil, fmt.Errorf("storage: upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir %q: %w", dir, err)
	}
	return &LocalStore{dir: dir, logger: logger}, nil
}

// Save writes the whole buffer in one call. A crash mid-write leaves a
// partial file but no Document row, since rows are created only after
// Save returns.
func (s *LocalStore) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("storage.save_failed", "path", path, "error", err)
		return "", fmt.Errorf("storage: write %q: %w", path, err)
	}
	s.logger.Debug("storage.saved", "path", path, "bytes", len(data))
	return path, nil
}

// Dir returns the configured upload directory.
func (s *LocalStore) Dir() string { return s.dir }
