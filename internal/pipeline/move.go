package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultProcessedDir is the subfolder, next to each file, that
// successfully tagged files move into.
const DefaultProcessedDir = "processed"

// ErrDestinationExists is returned when the processed folder already holds
// a file with the same name. The source file is left in place; overwriting
// a previously processed file would destroy its metadata.
var ErrDestinationExists = errors.New("destination file already exists")

// MoveToProcessed moves path into the processedDir subfolder of its own
// directory, creating the folder if needed, and returns the destination
// path. Rename only: a cross-device watch/processed split is a
// configuration error, not something to paper over with copy+delete.
func MoveToProcessed(path, processedDir string) (string, error) {
	destDir := filepath.Join(filepath.Dir(path), processedDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", destDir, err)
	}

	dest := filepath.Join(destDir, filepath.Base(path))
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("moving %s to %s: %w", path, dest, err)
	}
	return dest, nil
}

// underDir reports whether any directory component of path equals name.
// "preprocessed" or "my_processed_files" components do not count.
func underDir(path, name string) bool {
	dir := filepath.Dir(path)
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == name {
			return true
		}
	}
	return false
}
