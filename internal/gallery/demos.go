package gallery

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parley-tui/parley/dialog"
	"github.com/parley-tui/parley/internal/eventlog"
	"github.com/parley-tui/parley/internal/jobs"
	"github.com/parley-tui/parley/theme"
)

// Section IDs for the demos that carry interactive content.
const (
	idFormName    = "form-name"
	idFormNotify  = "form-notify"
	idFormArchive = "form-archive"
	idThemePick   = "theme-pick"
)

// busySteps is how many progress steps the simulated export takes.
const busySteps = 40

// demoID identifies one gallery demo.
type demoID int

const (
	demoNone demoID = iota
	demoConfirm
	demoBusy
	demoForm
	demoTheme
	demoScroll
	demoHelp
)

// demo is one row in the gallery's demo list.
type demo struct {
	id   demoID
	name string
	desc string
}

// demoCatalog lists the demos in display order. Each one exercises a
// different slice of the dialog contract.
func demoCatalog() []demo {
	return []demo{
		{demoConfirm, "Confirm delete", "danger variant, backdrop dismiss"},
		{demoBusy, "Background export", "busy confirm driven by a job"},
		{demoForm, "Rename collection", "input and checkbox sections"},
		{demoTheme, "Theme picker", "list section, persisted choice"},
		{demoScroll, "Release notes", "scrolling body with scrollbar"},
		{demoHelp, "Keyboard help", "single-action dialog"},
	}
}

// Dialog intents surface as messages so state changes stay inside Update.
type (
	demoConfirmedMsg struct{ id demoID }
	demoCancelledMsg struct{ id demoID }
	demoDismissedMsg struct{ id demoID }
)

func confirmedCmd(id demoID) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return demoConfirmedMsg{id: id} }
	}
}

func cancelledCmd(id demoID) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return demoCancelledMsg{id: id} }
	}
}

func dismissedCmd(id demoID) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return demoDismissedMsg{id: id} }
	}
}

const deleteTarget = "Blade Runner (1982)"

// demoConfig builds the dialog configuration for the active demo. It is
// rebuilt from current gallery state on every Update and View pass, so the
// dialog always reflects what the gallery believes.
func (m *Model) demoConfig() dialog.Config {
	cfg := dialog.Config{
		Visible:           m.activeDemo != demoNone,
		Width:             m.dialogWidth,
		ShowHints:         m.hints,
		DismissOnBackdrop: m.dismissOnBackdrop,
		OnConfirm:         confirmedCmd(m.activeDemo),
		OnCancel:          cancelledCmd(m.activeDemo),
		OnRequestClose:    dismissedCmd(m.activeDemo),
	}

	switch m.activeDemo {
	case demoConfirm:
		cfg.Title = "Delete recording"
		cfg.Body = fmt.Sprintf("%q will be removed from the library. This cannot be undone.", deleteTarget)
		cfg.ConfirmLabel = "Delete"
		cfg.CancelLabel = "Keep"
		cfg.Variant = dialog.VariantDanger

	case demoBusy:
		cfg.Title = "Export library"
		cfg.ConfirmLabel = "Export"
		cfg.CancelLabel = "Close"
		job, running := m.busyState()
		cfg.Busy = running
		if running {
			cfg.Body = fmt.Sprintf("Writing archive... %d%%. Closing keeps the export running.", int(job.Progress*100))
		} else {
			cfg.Body = "Export 214 items to a portable archive. The export runs in the background."
		}

	case demoForm:
		cfg.Title = "Rename collection"
		cfg.ConfirmLabel = "Rename"
		cfg.CancelLabel = "Cancel"
		empty := func() bool { return strings.TrimSpace(m.nameInput.Value()) == "" }
		cfg.Content = []dialog.Section{
			dialog.Input(idFormName, "Name", &m.nameInput),
			dialog.When(empty, dialog.Text("A collection needs a name before it can be renamed.")),
			dialog.Spacer(),
			dialog.Checkbox(idFormNotify, "Notify watchers", &m.notify),
			dialog.Checkbox(idFormArchive, "Archive the previous name", &m.archive),
		}
		cfg.ConfirmDisabled = empty()

	case demoTheme:
		cfg.Title = "Choose theme"
		cfg.ConfirmLabel = "Apply"
		cfg.CancelLabel = "Cancel"
		cfg.Content = []dialog.Section{
			dialog.List(idThemePick, theme.Names(), &m.themeRow, dialog.WithMaxVisible(6)),
			dialog.Spacer(),
			dialog.Custom(m.themeSwatches, nil),
		}

	case demoScroll:
		cfg.Title = "Release notes"
		cfg.Body = releaseNotes
		cfg.ConfirmLabel = "Got it"
		cfg.HideCancel = true
		cfg.Variant = dialog.VariantInfo

	case demoHelp:
		cfg.Title = "Keyboard shortcuts"
		cfg.Body = helpBody(m.keys)
		cfg.ConfirmLabel = "OK"
		cfg.HideCancel = true
	}

	return cfg
}

// openDemo activates a demo and resets per-dialog presentation state.
func (m *Model) openDemo(id demoID) tea.Cmd {
	m.activeDemo = id
	m.dialog.Reset()

	switch id {
	case demoForm:
		m.nameInput.SetValue("")
		m.dialog.SetFocus(idFormName)
	case demoTheme:
		m.themeRow = themeIndex(m.th.Name)
	}
	return nil
}

func (m *Model) closeDemo() {
	m.activeDemo = demoNone
}

// confirmDemo handles a fired OnConfirm intent.
func (m *Model) confirmDemo(id demoID) {
	switch id {
	case demoConfirm:
		m.events.Add(eventlog.LevelSuccess, "deleted %q", deleteTarget)
		m.closeDemo()

	case demoBusy:
		// The confirm action cannot fire while busy, so a second job for
		// the same dialog is impossible.
		m.busyJob = m.runner.Start(m.ctx, "export library", busySteps)
		m.events.Add(eventlog.LevelInfo, "export started")

	case demoForm:
		name := strings.TrimSpace(m.nameInput.Value())
		m.events.Add(eventlog.LevelSuccess, "renamed collection to %q", name)
		if m.notify {
			m.events.Add(eventlog.LevelInfo, "watchers notified")
		}
		if m.archive {
			m.events.Add(eventlog.LevelDebug, "previous name archived")
		}
		m.closeDemo()

	case demoTheme:
		names := theme.Names()
		if m.themeRow >= 0 && m.themeRow < len(names) {
			m.applyTheme(names[m.themeRow])
		}
		m.closeDemo()

	default:
		m.closeDemo()
	}
}

// cancelDemo handles a fired OnCancel intent.
func (m *Model) cancelDemo(id demoID) {
	switch id {
	case demoConfirm:
		m.events.Add(eventlog.LevelInfo, "kept %q", deleteTarget)
	case demoBusy:
		if _, running := m.busyState(); running {
			m.events.Add(eventlog.LevelInfo, "export continues in the background")
		}
	case demoForm, demoTheme:
		m.events.Add(eventlog.LevelDebug, "dialog cancelled")
	}
	m.closeDemo()
}

// dismissDemo handles a fired OnRequestClose intent. The gallery treats a
// close request like cancel without the per-demo side effects.
func (m *Model) dismissDemo(id demoID) {
	if id == demoBusy {
		if _, running := m.busyState(); running {
			m.events.Add(eventlog.LevelInfo, "export continues in the background")
		}
	}
	m.closeDemo()
}

// busyState reports the job behind the busy demo, if any is still tracked.
func (m *Model) busyState() (jobs.Job, bool) {
	if m.busyJob == 0 || m.jobs == nil {
		return jobs.Job{}, false
	}
	job, ok := m.jobs.Job(m.busyJob)
	if !ok {
		return jobs.Job{}, false
	}
	return job, job.Running()
}

// pollBusyJob notices a finished export and closes the busy dialog. Runs on
// every tick so completion is observed even when no input arrives.
func (m *Model) pollBusyJob() {
	if m.busyJob == 0 || m.jobs == nil {
		return
	}
	job, ok := m.jobs.Job(m.busyJob)
	if !ok || job.Running() {
		return
	}
	if job.State == jobs.StateDone {
		m.events.Add(eventlog.LevelSuccess, "export finished in %s", job.Finished.Sub(job.Started).Round(time.Millisecond))
	} else {
		m.events.Add(eventlog.LevelError, "export failed: %s", job.Err)
	}
	m.busyJob = 0
	if m.activeDemo == demoBusy {
		m.closeDemo()
	}
}

func themeIndex(name string) int {
	for i, n := range theme.Names() {
		if n == name {
			return i
		}
	}
	return 0
}

// themeSwatches previews the accent palette of the highlighted theme. It
// reads the list selection fresh each frame, so the blocks track the cursor
// before any choice is applied.
func (m *Model) themeSwatches(dialog.RenderContext) dialog.RenderedSection {
	names := theme.Names()
	row := m.themeRow
	if row < 0 || row >= len(names) {
		row = 0
	}
	t := theme.Get(names[row])

	blocks := make([]string, 0, 5)
	for _, c := range []string{t.Accent, t.Success, t.Warning, t.Danger, t.Info} {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return dialog.RenderedSection{Content: strings.Join(blocks, " ")}
}

// helpBody formats the key map for the help dialog.
func helpBody(k keyMap) string {
	var b strings.Builder
	for gi, group := range k.helpGroups() {
		if gi > 0 {
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("%-10s %s\n", h.Key, h.Desc))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

const releaseNotes = `0.4.0

Added a busy state for confirm actions. A dialog whose confirm is busy
shows a spinner and cannot be activated by any path, keyboard or mouse,
until the caller clears the flag.

The footer now collapses entirely when both actions are hidden, instead
of reserving an empty row.

0.3.2

Fixed hover styling leaking onto disabled actions. Disabled actions no
longer register hit regions at all, so hover and click resolve against
the surface behind them.

Scroll position is clamped when a dialog shrinks between renders.

0.3.1

Double clicks on the backdrop were dismissing twice. A gesture now
resolves to at most one intent callback.

0.3.0

Sections. Dialog bodies can mix wrapped text with interactive rows:
text inputs, checkboxes and pick lists, each focusable from the dialog's
tab cycle. Sections receive keys only while focused.

Added mouse wheel scrolling over the body viewport.

0.2.0

Themes moved out of the dialog package. A dialog is drawn with whatever
theme the host passes, and restyling is a render-time concern with no
per-dialog state.

0.1.0

Initial release: modal confirm and cancel flows over a dimmed backdrop,
keyboard-first with full mouse support.`
