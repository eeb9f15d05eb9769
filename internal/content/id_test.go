package content

import (
	"path/filepath"
	"testing"
)

func TestResolveKnownIdentifiers(t *testing.T) {
	for _, id := range All() {
		path, ok := Resolve("/tmp/settings", id)
		if !ok {
			t.Fatalf("expected %s to resolve", id)
		}
		want := filepath.Join("/tmp/settings", Subdir, id.FileName())
		if path != want {
			t.Fatalf("resolve %s: got %s want %s", id, path, want)
		}
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	path, ok := Resolve("/tmp/settings", ID("bogus"))
	if ok || path != "" {
		t.Fatalf("unknown id must not resolve, got %q", path)
	}
}

func TestParseAcceptsIdentifierAndFileName(t *testing.T) {
	cases := []struct {
		name string
		want ID
		ok   bool
	}{
		{"customInstructions", CustomInstructions, true},
		{"custom-instructions.md", CustomInstructions, true},
		{"custom-instructions", CustomInstructions, true},
		{"projectNotes", ProjectNotes, true},
		{"prompt-preamble", PromptPreamble, true},
		{"nonsense", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parse %q: got (%q, %v) want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
