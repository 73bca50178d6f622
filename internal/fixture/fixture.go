// Package fixture reads and writes the reference files that content comparisons run against.
//
// A fixture is a plain UTF-8 text file at a caller-supplied path. Load treats a missing file as a distinguished case rather than an error; everything else (permission problems, a
// directory at the path) indicates a broken test environment and surfaces as an error naming the path. Store fully replaces the file's content and creates missing parent directories,
// writing through a temp file in the same directory so a failed write cannot truncate an existing fixture.
package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads the whole file at path as text. ok is false when no file exists at path, with a nil error.
func Load(path string) (content string, ok bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("unable to read contents of %s: %w", path, err)
	}
	return string(b), true, nil
}

// Store writes content to path, fully replacing any existing content. Missing ancestor directories of path are created first.
func Store(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create directory %s: %w", dir, err)
	}

	// Write to a sibling temp file and rename into place: an interrupted write must never leave a half-written fixture at path.
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("unable to write to %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("unable to write to %s: %w", path, err)
	}
	// CreateTemp files are 0600; fixtures are checked in and should be world-readable.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("unable to write to %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("unable to write to %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("unable to write to %s: %w", path, err)
	}
	return nil
}
