package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the gallery's behavior settings. Everything here has a
// working default so the gallery runs without any file present.
type Config struct {
	Mouse             bool
	Hints             bool
	DismissOnBackdrop bool
	EventCapacity     int
	DialogWidth       int // zero lets the dialog pick its default
}

const (
	defaultConfigPath    = "~/.config/parley/config.toml"
	defaultEventCapacity = 200
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Mouse:             true,
		Hints:             true,
		DismissOnBackdrop: true,
		EventCapacity:     defaultEventCapacity,
	}
}

// Path resolves the config file location, expanding ~ and falling back to
// the default path when empty.
func Path(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// Load locates and parses the gallery config, falling back to defaults when
// the file is missing. A file that exists but does not parse is an error;
// silently ignoring it would make edits appear to do nothing.
func Load(path string) (Config, error) {
	resolved, err := Path(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// Pointer fields distinguish "absent" from "set to false/zero" so the
	// defaults above survive a partial file.
	var raw struct {
		Mouse             *bool `toml:"mouse"`
		Hints             *bool `toml:"hints"`
		DismissOnBackdrop *bool `toml:"dismiss_on_backdrop"`
		EventCapacity     *int  `toml:"event_capacity"`
		DialogWidth       *int  `toml:"dialog_width"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Mouse != nil {
		cfg.Mouse = *raw.Mouse
	}
	if raw.Hints != nil {
		cfg.Hints = *raw.Hints
	}
	if raw.DismissOnBackdrop != nil {
		cfg.DismissOnBackdrop = *raw.DismissOnBackdrop
	}
	if raw.EventCapacity != nil && *raw.EventCapacity > 0 {
		cfg.EventCapacity = *raw.EventCapacity
	}
	if raw.DialogWidth != nil && *raw.DialogWidth > 0 {
		cfg.DialogWidth = *raw.DialogWidth
	}

	return cfg, nil
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
