// Package settings resolves the per-install settings directory where content
// documents live and loads the optional settings.yaml inside it.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomvale/inkstone/internal/content"
)

// AppDirName is the directory created under the storage root.
const AppDirName = "inkstone"

const fileName = "settings.yaml"

const defaultBannerSeconds = 3

// Settings models settings.yaml. Every field is optional; zero values fall
// back to defaults at read time.
type Settings struct {
	// Editor is the command used to open content documents, e.g. "nvim".
	Editor string `yaml:"editor,omitempty"`
	// BannerSeconds overrides how long the refresh success banner stays up.
	BannerSeconds int `yaml:"banner_seconds,omitempty"`
}

// EditorCommand returns the configured editor, falling back to $VISUAL,
// $EDITOR, then vi.
func (s Settings) EditorCommand() string {
	if cmd := strings.TrimSpace(s.Editor); cmd != "" {
		return cmd
	}
	if cmd := strings.TrimSpace(os.Getenv("VISUAL")); cmd != "" {
		return cmd
	}
	if cmd := strings.TrimSpace(os.Getenv("EDITOR")); cmd != "" {
		return cmd
	}
	return "vi"
}

// BannerDuration returns how long the success banner is displayed.
func (s Settings) BannerDuration() time.Duration {
	if s.BannerSeconds > 0 {
		return time.Duration(s.BannerSeconds) * time.Second
	}
	return defaultBannerSeconds * time.Second
}

// Dir resolves and scaffolds the settings directory under storageRoot. An
// empty storageRoot defaults to the user's config directory.
//
// Structure created:
//
//	<root>/inkstone/
//	├── content/   <- one plain UTF-8 file per content document
//	└── logs/      <- host-side log
func Dir(storageRoot string) (string, error) {
	if storageRoot == "" {
		root, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("settings: resolve storage root: %w", err)
		}
		storageRoot = root
	}
	dir := filepath.Join(storageRoot, AppDirName)
	for _, sub := range []string{content.Subdir, "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return "", fmt.Errorf("settings: ensure %s: %w", sub, err)
		}
	}
	return dir, nil
}

// Load reads settings.yaml from the settings directory. A missing file yields
// defaults; a malformed one is an error so typos do not silently vanish.
func Load(dir string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("settings: read %s: %w", fileName, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: parse %s: %w", fileName, err)
	}
	return s, nil
}
