// Package logging configures the process-wide logger for the gallery.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup points the stdlib logger and Bubble Tea's debug log at filename.
// An empty filename discards all log output, which is the only safe default
// for a TUI that owns the terminal. The returned cleanup closes any opened
// files and is safe to call unconditionally.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		tf.Close()
		f.Close()
	}, nil
}
