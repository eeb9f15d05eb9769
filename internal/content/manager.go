package content

import (
	"errors"
	"fmt"
	"strings"
)

// Logger records manager diagnostics. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Editor is the host's editor integration for content documents.
type Editor interface {
	Open(path string, createIfMissing bool) error
	ReloadFromDisk() error
}

// Notifier receives host-side outcome notifications destined for the UI.
type Notifier interface {
	ContentRefreshed(id ID, success bool)
	StateChanged(documents map[ID]string)
}

// Deps is the manager's immutable dependency set, injected at construction.
type Deps struct {
	SettingsDir string
	Store       FileStore
	Editor      Editor
	Notifier    Notifier
	Logger      Logger
}

// Manager orchestrates open, read, update, and refresh operations over the
// content store and emits outcome notifications to the UI side.
//
// Operations for a single call run sequentially, but nothing serializes
// overlapping calls for the same identifier: two concurrent Updates race at the
// file-system level with last-write-wins semantics. The UI issues at most one
// interactive refresh at a time per identifier, which keeps that window benign.
type Manager struct {
	deps Deps
}

// NewManager builds a manager, substituting no-op collaborators for any nil
// dependency so callers only wire what they use.
func NewManager(deps Deps) *Manager {
	if deps.Store == nil {
		deps.Store = Store{}
	}
	if deps.Editor == nil {
		deps.Editor = nopEditor{}
	}
	if deps.Notifier == nil {
		deps.Notifier = nopNotifier{}
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Manager{deps: deps}
}

// Open makes the document the active editor view, creating an empty file first
// when absent, then forces a reload from disk so no stale buffered content is
// shown. Unknown identifiers are logged and ignored.
func (m *Manager) Open(id ID) error {
	path, ok := Resolve(m.deps.SettingsDir, id)
	if !ok {
		m.deps.Logger.Printf("content: open: unknown id %q", id)
		return nil
	}
	_, present, err := m.deps.Store.Read(path)
	if err != nil {
		return fmt.Errorf("content: open %s: %w", id, err)
	}
	if !present {
		if err := m.deps.Store.Write(path, ""); err != nil {
			return fmt.Errorf("content: open %s: %w", id, err)
		}
	}
	if err := m.deps.Editor.Open(path, true); err != nil {
		return fmt.Errorf("content: open %s: %w", id, err)
	}
	if err := m.deps.Editor.ReloadFromDisk(); err != nil {
		return fmt.Errorf("content: reload %s: %w", id, err)
	}
	return nil
}

// Read returns the document's text. Unknown identifiers, absent files, and
// unreadable files all normalize to the empty string; Read never fails the
// caller.
func (m *Manager) Read(id ID) string {
	path, ok := Resolve(m.deps.SettingsDir, id)
	if !ok {
		m.deps.Logger.Printf("content: read: unknown id %q", id)
		return ""
	}
	text, present, err := m.deps.Store.Read(path)
	if err != nil {
		m.deps.Logger.Printf("content: read %s: %v", id, err)
		return ""
	}
	if !present {
		return ""
	}
	return text
}

// Update writes the trimmed text to the document, or deletes the file when the
// text is blank after trimming. A delete against an absent file is a no-op.
// Every completed call, on either branch, pushes exactly one full state
// snapshot to the UI so its cached view stays consistent.
func (m *Manager) Update(id ID, text string) error {
	path, ok := Resolve(m.deps.SettingsDir, id)
	if !ok {
		m.deps.Logger.Printf("content: update: unknown id %q", id)
		return nil
	}
	trimmed := strings.TrimSpace(text)
	if trimmed != "" {
		if err := m.deps.Store.Write(path, trimmed); err != nil {
			return fmt.Errorf("content: update %s: %w", id, err)
		}
	} else {
		if err := m.deps.Store.Delete(path); err != nil && !errors.Is(err, ErrNotFound) {
			m.deps.Logger.Printf("content: update: delete %s: %v", id, err)
			return fmt.Errorf("content: update %s: %w", id, err)
		}
	}
	m.deps.Notifier.StateChanged(m.Snapshot())
	return nil
}

// Refresh re-reads the document and writes it back, normalizing surrounding
// whitespace and re-validating the file, then notifies the UI of the outcome.
//
// There is no Success=false path: a failure during the round trip propagates
// to the caller with no notification, which can leave a UI coordinator waiting
// in its refreshing state. Kept as-is; candidate hardening is to report such
// failures as an unsuccessful refresh instead.
func (m *Manager) Refresh(id ID) error {
	text := m.Read(id)
	if err := m.Update(id, text); err != nil {
		return err
	}
	m.deps.Notifier.ContentRefreshed(id, true)
	return nil
}

// Snapshot materializes every registered document for a full state push.
func (m *Manager) Snapshot() map[ID]string {
	documents := make(map[ID]string, len(order))
	for _, id := range All() {
		documents[id] = m.Read(id)
	}
	return documents
}

type nopEditor struct{}

func (nopEditor) Open(string, bool) error { return nil }
func (nopEditor) ReloadFromDisk() error   { return nil }

type nopNotifier struct{}

func (nopNotifier) ContentRefreshed(ID, bool)  {}
func (nopNotifier) StateChanged(map[ID]string) {}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
