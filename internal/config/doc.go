// Package config handles loading, validating and live-reloading the
// gallery's configuration file.
//
// # Overview
//
// This package reads a small TOML file controlling gallery behavior: mouse
// support, hint lines, backdrop dismissal, event feed capacity, and dialog
// width. The dialog component itself takes no configuration from here; the
// gallery translates these settings into dialog.Config fields per render.
//
// Two pieces make up the package:
//
//   - Load: a one-shot read of the file into a Config value
//   - Store: the live Config behind a generation counter, written by the
//     file watcher and polled by the UI
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/parley/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing, defaults fill the gaps
//
// Tilde expansion is performed on both explicit and default paths, and the
// result is made absolute.
//
// # Default Values
//
//   - mouse: true
//   - hints: true
//   - dismiss_on_backdrop: true
//   - event_capacity: 200
//   - dialog_width: 0 (the dialog package picks its own default width)
//
// # TOML Format
//
// Example config.toml, all fields optional:
//
//	mouse = true
//	hints = true
//	dismiss_on_backdrop = true
//	event_capacity = 200
//	dialog_width = 60
//
// Parsing uses pointer fields internally so that "absent" and "set to
// false/zero" are distinguishable; a partial file overrides only what it
// names. The numeric fields additionally ignore non-positive values, since
// a zero-capacity event log and a zero-width dialog are never what an edit
// meant.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead, so
// the gallery works out-of-the-box. A file that exists but fails to parse
// IS an error; swallowing it would make edits appear to do nothing.
//
// # Live Reload
//
// Store carries the active Config across file-watcher reloads:
//
//	Watcher (producer):           UI (consumer):
//	┌────────────────┐            ┌──────────────────────┐
//	│ fsnotify event │            │ tick                 │
//	│      ↓         │            │   ↓                  │
//	│ config.Load()  │            │ store.Generation()   │
//	│      ↓         │  (mutex)   │   ↓ changed?         │
//	│ store.Set(cfg) │───────────→│ store.Get() → apply  │
//	└────────────────┘            └──────────────────────┘
//
// Set bumps the generation counter; the UI compares generations on its
// tick and re-applies settings only when the number moved. Reload handling
// therefore never touches the render path, and a burst of file events
// costs the UI one integer comparison per tick.
//
// # Concurrency Model
//
// Store uses a readers-writer lock with a single writer (the watcher) and
// a single reader (the UI tick). Config is a small value type, so Get
// returns a copy and no caller ever holds a reference into the store.
//
// # Usage Example
//
//	cfg, err := config.Load(flagPath)
//	if err != nil {
//		return err
//	}
//	store := config.NewStore(cfg)
//
//	// Watcher goroutine, on a relevant file event:
//	if next, err := config.Load(flagPath); err == nil {
//		store.Set(next)
//	}
//
//	// UI, once per tick:
//	if store.Generation() != lastGen {
//		cfg, lastGen = store.Get()
//	}
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Callbacks or subscriptions (the UI already ticks; polling a counter
//     is simpler than routing watcher goroutine calls into Bubble Tea)
//   - Writing the file back (the gallery is read-only toward its config)
//   - Global state (the Store is constructed in app wiring and passed down)
//
// The design prioritizes working defaults over required setup, and loud
// parse failures over silently ignored edits.
//
// # Testing Considerations
//
// When testing code that uses this package:
//   - Provide explicit config paths under t.TempDir() to avoid depending
//     on the user's home directory
//   - Construct Config values directly for unit tests; Load matters only
//     when file contents are the thing under test
//   - NewStore seeds generation 1, so a fresh store already differs from a
//     zero "last seen" generation and the first poll applies it
package config
