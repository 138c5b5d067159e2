// Package theme provides named color themes and pre-built Lipgloss styles
// for parley dialogs and their host chrome.
//
// A Theme is a flat set of hex colors; Styles() turns one into ready-to-use
// styles so render paths never construct styles per frame. Themes are
// addressed by name (Get, Next, Names) so hosts can cycle and persist them.
package theme
