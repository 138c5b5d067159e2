package app

import (
	"context"
	"fmt"
	"time"

	"github.com/parley-tui/parley/internal/config"
	"github.com/parley-tui/parley/internal/eventlog"
	"github.com/parley-tui/parley/internal/gallery"
	"github.com/parley-tui/parley/internal/jobs"
	"github.com/parley-tui/parley/internal/logging"
	"github.com/parley-tui/parley/internal/prefs"
)

// Options configure the gallery application.
type Options struct {
	ConfigPath string        // empty uses default ~/.config/parley/config.toml
	PrefsPath  string        // empty uses default ~/.config/parley/prefs.toml
	LogFile    string        // empty disables file logging
	Tick       time.Duration // zero uses the gallery default
}

// Run boots the gallery TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cleanup, err := logging.Setup(opts.LogFile)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer cleanup()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	cfgStore := config.NewStore(cfg)
	events := eventlog.New(cfg.EventCapacity)
	jobStore := &jobs.Store{}
	runner := jobs.NewRunner(jobStore, 0)

	// Push config edits into the store while the UI runs. A failed watch
	// is not fatal; the gallery just loses live reload.
	if err := StartWatcher(ctx, opts.ConfigPath, cfgStore, events); err != nil {
		events.Add(eventlog.LevelWarn, "config watcher unavailable: %v", err)
	}

	err = gallery.Run(gallery.Options{
		Context:   ctx,
		Config:    cfgStore,
		Jobs:      jobStore,
		Runner:    runner,
		Events:    events,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Tick:      opts.Tick,
	})
	if err != nil {
		if ctx.Err() != nil {
			// A signal killed the program; that is a clean exit.
			return nil
		}
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}
