// Package content defines the closed registry of file-backed content documents
// and the manager that owns their lifecycle. Each document is plain UTF-8 text
// stored under the settings directory; identifiers resolve to paths through a
// single normalization point so unknown identifiers degrade to no-ops instead
// of scattered error handling.

package content

import "path/filepath"

// Subdir is the directory under the settings directory that holds document files.
const Subdir = "content"

// ID identifies one logical, file-backed content document.
type ID string

const (
	// CustomInstructions is the user's persistent instruction text.
	CustomInstructions ID = "customInstructions"
	// ProjectNotes is free-form project context the user maintains.
	ProjectNotes ID = "projectNotes"
	// PromptPreamble is text prepended to every prompt the host assembles.
	PromptPreamble ID = "promptPreamble"
)

var fileNames = map[ID]string{
	CustomInstructions: "custom-instructions.md",
	ProjectNotes:       "project-notes.md",
	PromptPreamble:     "prompt-preamble.md",
}

var order = []ID{CustomInstructions, ProjectNotes, PromptPreamble}

// All returns the registered identifiers in stable display order.
func All() []ID {
	ids := make([]ID, len(order))
	copy(ids, order)
	return ids
}

// Known reports whether the identifier is part of the registry.
func (id ID) Known() bool {
	_, ok := fileNames[id]
	return ok
}

// FileName returns the conventional file name for the identifier, or "" when unknown.
func (id ID) FileName() string {
	return fileNames[id]
}

func (id ID) String() string {
	return string(id)
}

// Parse maps a user-supplied name to a registered identifier. It accepts the
// identifier itself or the document file name with or without its extension.
func Parse(name string) (ID, bool) {
	for id, file := range fileNames {
		if name == string(id) || name == file {
			return id, true
		}
		if ext := filepath.Ext(file); ext != "" && name == file[:len(file)-len(ext)] {
			return id, true
		}
	}
	return "", false
}

// Resolve returns the absolute file path for the identifier inside the settings
// directory, or ok=false for identifiers outside the registry.
func Resolve(settingsDir string, id ID) (string, bool) {
	name, ok := fileNames[id]
	if !ok {
		return "", false
	}
	return filepath.Join(settingsDir, Subdir, name), true
}
