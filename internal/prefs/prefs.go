// Package prefs handles gallery user preferences persistence.
// Preferences are stored in ~/.config/parley/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the user preferences that survive restarts.
type Prefs struct {
	Theme    string `toml:"theme"`
	ShowFeed bool   `toml:"show_feed"`
}

const (
	defaultPrefsPath = "~/.config/parley/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used when nothing is on disk.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, ShowFeed: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Preferences are cosmetic, so
// every failure mode degrades to defaults rather than surfacing an error.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	prefs := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	var raw struct {
		Theme    *string `toml:"theme"`
		ShowFeed *bool   `toml:"show_feed"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Default(), nil // Graceful degradation
	}

	if raw.Theme != nil && strings.TrimSpace(*raw.Theme) != "" {
		prefs.Theme = strings.TrimSpace(*raw.Theme)
	}
	if raw.ShowFeed != nil {
		prefs.ShowFeed = *raw.ShowFeed
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
