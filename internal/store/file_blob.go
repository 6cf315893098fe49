package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/learner/internal"
)

// FileBlob stores each key as <dir>/<key>.json
type FileBlob struct {
	dir string
}

// NewFileBlob creates a file backed blob store rooted at dir. The directory
// is created on first write.
func NewFileBlob(dir string) *FileBlob {
	return &FileBlob{dir: dir}
}

// Dir returns the root directory
func (f *FileBlob) Dir() string {
	return f.dir
}

func (f *FileBlob) path(key string) string {
	return filepath.Join(f.dir, internal.SanitizeFilename(key)+".json")
}

// Get reads the file for key
func (f *FileBlob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes value to a temporary file and renames it over the old one
func (f *FileBlob) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Close does nothing
func (f *FileBlob) Close() error {
	return nil
}
