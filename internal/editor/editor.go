// Package editor is the host's editor integration for content documents.
package editor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// Command opens documents in an external editor subprocess attached to the
// caller's terminal. It satisfies content.Editor.
type Command struct {
	// Name is the editor executable, e.g. "vi" or "nvim".
	Name string

	// Stdin/Stdout/Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Open launches the editor on path, creating an empty file first when asked.
// It blocks until the editor exits.
func (c Command) Open(path string, createIfMissing bool) error {
	if createIfMissing {
		if err := ensureFile(path); err != nil {
			return err
		}
	}
	if c.Name == "" {
		return errors.New("editor: no editor command configured")
	}
	cmd := exec.Command(c.Name, path)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor: run %s: %w", c.Name, err)
	}
	return nil
}

// ReloadFromDisk is a no-op for an external editor: it reads the file at
// launch, so there is no buffered view to refresh. The method stays on the
// interface for integrations that do keep one.
func (c Command) ReloadFromDisk() error {
	return nil
}

func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("editor: stat %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("editor: create %s: %w", path, err)
	}
	return f.Close()
}
