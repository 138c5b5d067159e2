// Package gallery provides the interactive demo application for the dialog
// component.
//
// # Overview
//
// The gallery is a Bubble Tea program whose Model owns everything the
// dialog package refuses to own: whether a dialog is open, which demo it
// belongs to, and the values its sections edit. Each demo rebuilds a
// dialog.Config from that state on every Update and View pass, so the
// rendered dialog can never disagree with the gallery.
//
// # Architecture
//
// State flows one way into the dialog and comes back as intent messages:
//
//	Gallery Model:                      dialog.Model:
//	┌─────────────────────┐             ┌─────────────────────┐
//	│ activeDemo          │──Config────→│ focus, hover,       │
//	│ nameInput, notify,  │  (rebuilt   │ scroll, spinner     │
//	│ archive, themeRow   │  per pass)  │                     │
//	│         ↑           │             │ callbacks return    │
//	│ Update mutates      │←──intent────│ commands emitting   │
//	└─────────────────────┘   messages  │ intent messages     │
//	                                    └─────────────────────┘
//
// The dialog is handed caller-owned pointers (the text input, the checkbox
// bools, the list index) inside freshly built sections, mutates them during
// its Update, and reports confirm/cancel/close through callbacks. The
// callbacks only emit messages; every gallery state change happens inside
// the gallery's own Update as a result of those messages, never inside a
// callback body.
//
// # Package Structure
//
//   - app.go: Options, the root Model, input routing, panes, and Run
//   - demos.go: the demo catalog and per-demo dialog configurations
//   - feed.go: the event feed pane and clipboard yank
//   - keys.go: key bindings for the gallery shell
//
// # Demos
//
// Each demo exercises a different slice of the dialog contract:
//
//   - Confirm delete: danger variant, confirm/cancel intents, backdrop dismiss
//   - Background export: a job store drives the busy confirm state end to end
//   - Rename collection: input and checkbox sections with derived confirm
//     gating and a conditional notice while the name is empty
//   - Theme picker: list section whose selection the gallery owns, with a
//     custom swatch preview, persisted on apply
//   - Release notes: body taller than the viewport, scrollbar and wheel
//   - Keyboard help: single-action dialog built from the key map
//
// # Input Routing
//
// Update routes messages in a fixed order:
//
//  1. ctrl+c always quits, dialog open or not
//  2. While a dialog is open, every key and mouse message goes to
//     dialog.Update; the gallery's own bindings are unreachable
//  3. Otherwise keys act on the focused pane (demo list or event feed)
//     and mouse events resolve against the chrome's hit regions
//
// View clears the shared mouse.Handler at the top of every frame and the
// visible panes re-register their regions; the dialog registers last, so
// its backdrop and surface sit above the chrome in hit-testing. Row
// regions carry their row index in Region.Data, which lets a click select
// and a double click open without re-deriving geometry.
//
// # Tick Loop
//
// Init schedules a tick (250ms by default) that re-arms itself in
// handleTick. Each tick does three cheap checks:
//
//  1. pollConfig compares the config store generation and re-applies
//     settings when the file watcher published a change
//  2. pollBusyJob watches the job store so a finished export closes the
//     busy dialog and logs its outcome even when no input arrives
//  3. nudgeDialog forwards the tick to the dialog so its spinner keeps
//     animating while a busy dialog is up
//
// # Layout
//
// The frame is a header row, a command bar, and a content area:
//
//	┌ header: title, active job progress, event count ─────┐
//	│ command bar: key hints for the focused pane          │
//	│ ┌ demo list (36 cols) ┐  ┌ event feed ─────────────┐ │
//	│ │ ...                 │  │ ...                     │ │
//	│ └─────────────────────┘  └─────────────────────────┘ │
//	└──────────────────────────────────────────────────────┘
//
// The feed pane is dropped below 72 columns or when toggled off, and the
// demo list takes the full width. A dialog renders over the whole frame
// through dialog.View, which dims the chrome behind it.
//
// # External Dependencies
//
//   - config.Store: generation-counted settings, updated by the file watcher
//   - jobs.Store / jobs.Runner: simulated background work for the busy demo
//   - eventlog.Log: ring buffer behind the event feed
//   - prefs: theme and feed visibility persistence
//
// # Usage Example
//
//	err := gallery.Run(gallery.Options{
//		Context: ctx,
//		Config:  cfgStore,
//		Jobs:    jobStore,
//		Runner:  runner,
//		Events:  events,
//		Prefs:   userPrefs,
//	})
//
// Run enables the alternate screen, turns on cell-motion mouse tracking
// when the config allows it, and, when given a Context, wires it into the
// program so signal cancellation shuts the gallery down.
//
// # Testing Considerations
//
// The model is driven without a terminal by calling Update directly:
//   - Construct with New(Options{...}) and feed a tea.WindowSizeMsg first
//   - Inject an eventlog.Log and a jobs.Store/Runner with a short step so
//     busy flows finish quickly
//   - Point PrefsPath at a file under t.TempDir(); theme and feed toggles
//     write through it
//   - Intent messages (demo confirmed/cancelled/dismissed) can be applied
//     directly to exercise outcome handling without keystrokes
package gallery
