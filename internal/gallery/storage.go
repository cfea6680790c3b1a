package gallery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the single-key durable backend for the serialized gallery. Save
// replaces the whole record; there is no partial write.
type Storage interface {
	// Load returns the stored blob and whether one exists.
	Load() ([]byte, bool, error)
	// Save overwrites the stored blob wholesale.
	Save(data []byte) error
	// Clear removes the stored blob. Clearing an absent blob is a no-op.
	Clear() error
}

// FileStorage keeps the gallery blob in a single JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the gallery file. A missing file is not an error.
func (s *FileStorage) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("os.ReadFile(%s): %w", s.path, err)
	}
	return data, true, nil
}

// Save overwrites the gallery file, creating parent directories on first use.
func (s *FileStorage) Save(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s): %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s): %w", s.path, err)
	}
	return nil
}

// Clear deletes the gallery file.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove(%s): %w", s.path, err)
	}
	return nil
}
