package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomvale/inkstone/internal/content"
)

func TestDirScaffoldsLayout(t *testing.T) {
	root := t.TempDir()
	dir, err := Dir(root)
	if err != nil {
		t.Fatalf("dir: %v", err)
	}
	if dir != filepath.Join(root, AppDirName) {
		t.Fatalf("unexpected settings dir %s", dir)
	}
	for _, sub := range []string{content.Subdir, "logs"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory: %v", sub, err)
		}
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.BannerDuration() != 3*time.Second {
		t.Fatalf("expected 3s default banner, got %s", s.BannerDuration())
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	data := []byte("editor: nvim\nbanner_seconds: 5\n")
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.EditorCommand() != "nvim" {
		t.Fatalf("expected nvim, got %s", s.EditorCommand())
	}
	if s.BannerDuration() != 5*time.Second {
		t.Fatalf("expected 5s banner, got %s", s.BannerDuration())
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("editor: [broken"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEditorCommandFallsBackToEnvironment(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "helix")
	if got := (Settings{}).EditorCommand(); got != "helix" {
		t.Fatalf("expected helix, got %s", got)
	}
	t.Setenv("EDITOR", "")
	if got := (Settings{}).EditorCommand(); got != "vi" {
		t.Fatalf("expected vi fallback, got %s", got)
	}
}
