package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveData moves the data directory into <parent>/archive with a
// timestamped name and returns the new path
func ArchiveData(dataDir string) (string, error) {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return "", fmt.Errorf("data directory does not exist: %s", dataDir)
	}

	archiveDir := filepath.Join(filepath.Dir(dataDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(dataDir)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405")))

	// Two archives within the same second get microseconds appended
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405.000000")))
	}

	if err := os.Rename(dataDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive data directory: %w", err)
	}

	return archivePath, nil
}
