// Package app is the composition root for the parley gallery.
//
// # Overview
//
// Run wires configuration, preferences, logging, the job store, and the
// config file watcher together, then hands everything to the gallery UI and
// blocks until the context is cancelled or the user quits.
//
// # Components
//
//   - app.go: Run and its Options
//   - watch.go: fsnotify watcher that republishes edited config files
//
// # Live Reload
//
// The watcher observes the config file's directory and, debounced, reloads
// the file on write or create events. Successful reloads bump the config
// store's generation; the gallery polls that generation on its tick and
// applies the new settings mid-session. Files that fail to parse are
// reported to the event feed and the previous settings stay in effect.
//
// # Error Handling
//
// Fatal at startup: unreadable log file, config that exists but does not
// parse. Everything later degrades: a failed watch disables live reload
// with a warning event, and preference problems fall back to defaults.
package app
