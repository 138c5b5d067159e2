package gallery

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the gallery shell. Bindings for
// an open dialog live in the dialog package; these apply between dialogs.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding

	// Feed
	ToggleFeed key.Binding
	Yank       key.Binding
	ClearFeed  key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Keyboard help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch pane"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open demo"),
		),

		ToggleFeed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle event feed"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy event line"),
		),
		ClearFeed: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear event feed"),
		),
	}
}

// helpGroups returns the bindings grouped for the help dialog.
func (k keyMap) helpGroups() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Up, k.Down, k.Top, k.Bottom},
		{k.Tab, k.ToggleFeed, k.Yank, k.ClearFeed},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
