package app

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/parley-tui/parley/internal/config"
	"github.com/parley-tui/parley/internal/eventlog"
)

// reloadDebounce coalesces editor write bursts into a single reload.
const reloadDebounce = 100 * time.Millisecond

// StartWatcher watches the config file for edits and publishes reloaded
// settings to the store. The watch covers the file's directory rather than
// the file itself so it survives editors that replace the file on save.
func StartWatcher(ctx context.Context, path string, store *config.Store, events *eventlog.Log) error {
	resolved, err := config.Path(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(resolved)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != resolved {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(reloadDebounce, func() {
					reload(resolved, store, events)
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("config watcher: %v", err)
			}
		}
	}()

	return nil
}

// reload parses the edited file and publishes it. The gallery reports the
// generation change itself, so only failures surface here.
func reload(path string, store *config.Store, events *eventlog.Log) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("config reload: %v", err)
		events.Add(eventlog.LevelWarn, "config reload failed: %v", err)
		return
	}
	store.Set(cfg)
}
