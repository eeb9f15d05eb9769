package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound reports a delete against a document file that does not exist.
var ErrNotFound = errors.New("content: file not found")

// FileStore is the narrow file-system surface the manager depends on. Absence
// on read is not an error; absence on delete is reported via ErrNotFound so
// callers can treat it as idempotent.
type FileStore interface {
	Read(path string) (text string, present bool, err error)
	Write(path, text string) error
	Delete(path string) error
}

// Store is the default FileStore backed by the real file system. It owns no
// state and operates per call.
type Store struct{}

// Read returns the file's text, with present=false for a missing file.
func (Store) Read(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("content: read %s: %w", path, err)
	}
	return string(data), true, nil
}

// Write stores text at path, creating parent directories as needed and
// overwriting any existing file.
func (Store) Write(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("content: ensure dir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("content: write %s: %w", path, err)
	}
	return nil
}

// Delete removes the file at path, returning ErrNotFound when it is absent.
func (Store) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("content: delete %s: %w", path, err)
	}
	return nil
}
