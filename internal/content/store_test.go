package content

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestStoreReadMissingFile(t *testing.T) {
	store := Store{}
	text, present, err := store.Read(filepath.Join(t.TempDir(), "absent.md"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if present || text != "" {
		t.Fatalf("expected absent empty result, got present=%v text=%q", present, text)
	}
}

func TestStoreWriteThenRead(t *testing.T) {
	store := Store{}
	path := filepath.Join(t.TempDir(), "nested", "doc.md")
	if err := store.Write(path, "hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, present, err := store.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !present || text != "hello" {
		t.Fatalf("round trip mismatch: present=%v text=%q", present, text)
	}
}

func TestStoreWriteOverwrites(t *testing.T) {
	store := Store{}
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := store.Write(path, "first"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write(path, "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	text, _, err := store.Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "second" {
		t.Fatalf("expected overwrite, got %q", text)
	}
}

func TestStoreDeleteMissingFileIsDistinguishable(t *testing.T) {
	store := Store{}
	err := store.Delete(filepath.Join(t.TempDir(), "absent.md"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDeleteRemovesFile(t *testing.T) {
	store := Store{}
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := store.Write(path, "text"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Delete(path); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, present, err := store.Read(path)
	if err != nil {
		t.Fatalf("read after delete: %v", err)
	}
	if present {
		t.Fatalf("file should be gone")
	}
}
