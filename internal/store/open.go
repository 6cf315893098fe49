package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFileName is the database file created inside the data directory
const SQLiteFileName = "learner.db"

// Open creates the blob backend called name, storing data under dataDir
func Open(name, dataDir string) (Blob, error) {
	switch name {
	case BackendMemory:
		return NewMemoryBlob(), nil

	case BackendFile, "":
		return NewFileBlob(dataDir), nil

	case BackendSQLite:
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return NewSQLiteBlob(filepath.Join(dataDir, SQLiteFileName))

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
}
