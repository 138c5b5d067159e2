package gallery

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/parley-tui/parley/dialog"
	"github.com/parley-tui/parley/internal/config"
	"github.com/parley-tui/parley/internal/eventlog"
	"github.com/parley-tui/parley/internal/jobs"
	"github.com/parley-tui/parley/internal/prefs"
	"github.com/parley-tui/parley/mouse"
	"github.com/parley-tui/parley/theme"
)

// Pane focus targets.
const (
	paneList = iota
	paneFeed
)

// Hit region IDs for the gallery chrome. Row regions carry their index in
// Region.Data.
const (
	regionList    = "demo-list"
	regionFeed    = "event-feed"
	demoRowPrefix = "demo-"
	feedRowPrefix = "feed-"
)

const (
	defaultTick   = 250 * time.Millisecond
	listPaneWidth = 36
	// feedMinWidth is the terminal width below which the feed pane is
	// dropped even when enabled.
	feedMinWidth = 72
)

// Options configures the gallery.
type Options struct {
	Context   context.Context
	Config    *config.Store
	Jobs      *jobs.Store
	Runner    *jobs.Runner
	Events    *eventlog.Log
	Prefs     prefs.Prefs
	PrefsPath string
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Wiring
	ctx       context.Context
	config    *config.Store
	jobs      *jobs.Store
	runner    *jobs.Runner
	events    *eventlog.Log
	prefsPath string
	tick      time.Duration

	keys   keyMap
	dialog *dialog.Model
	mouse  *mouse.Handler
	th     theme.Theme

	// UI state
	width       int
	height      int
	ready       bool
	focusedPane int
	selectedRow int

	// Feed state
	showFeed   bool
	feedRow    int
	feedFollow bool

	// Active demo and the caller-owned state behind its dialog
	activeDemo demoID
	busyJob    int
	nameInput  textinput.Model
	notify     bool
	archive    bool
	themeRow   int

	// Settings from the last seen config generation
	cfgGen            uint64
	hints             bool
	dismissOnBackdrop bool
	dialogWidth       int
	mouseEnabled      bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	events := opts.Events
	if events == nil {
		events = eventlog.New(config.Default().EventCapacity)
	}

	store := opts.Jobs
	if store == nil {
		store = &jobs.Store{}
	}

	runner := opts.Runner
	if runner == nil {
		runner = jobs.NewRunner(store, 0)
	}

	tick := opts.Tick
	if tick == 0 {
		tick = defaultTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "New name"
	input.CharLimit = 48

	m := Model{
		ctx:        ctx,
		config:     opts.Config,
		jobs:       store,
		runner:     runner,
		events:     events,
		prefsPath:  prefsPath,
		tick:       tick,
		keys:       defaultKeyMap(),
		dialog:     dialog.New(),
		mouse:      mouse.NewHandler(),
		th:         theme.Get(opts.Prefs.Theme),
		showFeed:   opts.Prefs.ShowFeed,
		feedFollow: true,
		nameInput:  input,
	}

	if opts.Config != nil {
		cfg, gen := opts.Config.Get()
		m.applyConfig(cfg, gen)
	} else {
		m.applyConfig(config.Default(), 0)
	}

	return m
}

func (m *Model) applyConfig(cfg config.Config, gen uint64) {
	m.cfgGen = gen
	m.hints = cfg.Hints
	m.dismissOnBackdrop = cfg.DismissOnBackdrop
	m.dialogWidth = cfg.DialogWidth
	m.mouseEnabled = cfg.Mouse
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case demoConfirmedMsg:
		m.confirmDemo(msg.id)
		cmd := m.nudgeDialog(msg)
		return m, cmd

	case demoCancelledMsg:
		m.cancelDemo(msg.id)
		return m, nil

	case demoDismissedMsg:
		m.dismissDemo(msg.id)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.dialogVisible() {
			cfg := m.demoConfig()
			cmd := m.dialog.Update(cfg, msg, m.mouse)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.dialogVisible() {
			cfg := m.demoConfig()
			cmd := m.dialog.Update(cfg, msg, m.mouse)
			return m, cmd
		}
		cmd := m.handleMouse(msg)
		return m, cmd

	default:
		// Spinner ticks and cursor blinks belong to the dialog.
		if m.dialogVisible() {
			cfg := m.demoConfig()
			cmd := m.dialog.Update(cfg, msg, m.mouse)
			return m, cmd
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.mouse.Clear()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	cfg := m.demoConfig()
	return m.dialog.View(cfg, m.th, b.String(), m.width, m.height, m.mouse)
}

func (m Model) dialogVisible() bool {
	return m.activeDemo != demoNone
}

// handleKey processes keyboard input while no dialog is open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		cmd := m.openDemo(demoHelp)
		return m, cmd

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFeed):
		m.showFeed = !m.showFeed
		if !m.showFeed {
			m.focusedPane = paneList
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		m.yankEvent()
		return m, nil

	case key.Matches(msg, m.keys.ClearFeed):
		m.events.Clear()
		m.feedRow = 0
		m.feedFollow = true
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.focusedPane == paneList {
			cmd := m.openDemo(demoCatalog()[m.selectedRow].id)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.jumpTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.jumpBottom()
		return m, nil
	}

	return m, nil
}

// handleMouse processes mouse input while no dialog is open.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	action := m.mouse.HandleMouse(msg)
	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		r := action.Region
		if r == nil {
			return nil
		}
		switch {
		case strings.HasPrefix(r.ID, demoRowPrefix):
			idx, _ := r.Data.(int)
			m.focusedPane = paneList
			m.selectedRow = clampInt(idx, 0, len(demoCatalog())-1)
			if action.Type == mouse.ActionDoubleClick {
				return m.openDemo(demoCatalog()[m.selectedRow].id)
			}
		case strings.HasPrefix(r.ID, feedRowPrefix):
			idx, _ := r.Data.(int)
			m.focusedPane = paneFeed
			count := m.events.Len()
			m.feedRow = clampInt(idx, 0, count-1)
			m.feedFollow = count > 0 && m.feedRow == count-1
		case r.ID == regionFeed:
			m.focusedPane = paneFeed
		case r.ID == regionList:
			m.focusedPane = paneList
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		r := action.Region
		if r == nil {
			return nil
		}
		switch {
		case r.ID == regionFeed || strings.HasPrefix(r.ID, feedRowPrefix):
			m.moveFeed(action.Delta)
		case r.ID == regionList || strings.HasPrefix(r.ID, demoRowPrefix):
			step := 1
			if action.Delta < 0 {
				step = -1
			}
			m.selectedRow = clampInt(m.selectedRow+step, 0, len(demoCatalog())-1)
		}
	}
	return nil
}

// handleTick polls the shared stores and schedules the next tick.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	m.pollConfig()
	m.pollBusyJob()
	nudge := m.nudgeDialog(msg)
	return m, tea.Batch(tickCmd(m.tick), nudge)
}

// nudgeDialog forwards a message to the open dialog so state derived from
// the config, like the busy spinner, advances without user input.
func (m *Model) nudgeDialog(msg tea.Msg) tea.Cmd {
	if !m.dialogVisible() {
		return nil
	}
	return m.dialog.Update(m.demoConfig(), msg, m.mouse)
}

// pollConfig picks up configuration changes published by the file watcher.
func (m *Model) pollConfig() {
	if m.config == nil {
		return
	}
	if m.config.Generation() == m.cfgGen {
		return
	}
	cfg, gen := m.config.Get()
	m.applyConfig(cfg, gen)
	m.events.Add(eventlog.LevelInfo, "configuration reloaded")
}

func (m *Model) toggleFocus() {
	if !m.showFeed {
		m.focusedPane = paneList
		return
	}
	if m.focusedPane == paneList {
		m.focusedPane = paneFeed
	} else {
		m.focusedPane = paneList
	}
}

func (m *Model) moveSelection(delta int) {
	if m.focusedPane == paneFeed {
		m.moveFeed(delta)
		return
	}
	m.selectedRow = clampInt(m.selectedRow+delta, 0, len(demoCatalog())-1)
}

func (m *Model) jumpTop() {
	if m.focusedPane == paneFeed {
		m.feedRow = 0
		m.feedFollow = false
		return
	}
	m.selectedRow = 0
}

func (m *Model) jumpBottom() {
	if m.focusedPane == paneFeed {
		m.feedFollow = true
		return
	}
	m.selectedRow = len(demoCatalog()) - 1
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.applyTheme(theme.Next(m.th.Name))
}

func (m *Model) applyTheme(name string) {
	m.th = theme.Get(name)
	m.savePrefs()
	m.events.Add(eventlog.LevelInfo, "theme set to %s", m.th.Name)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.th.Name, ShowFeed: m.showFeed})
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	t := m.th
	bar := func(fg string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(t.Surface))
	}

	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Accent)).
		Background(lipgloss.Color(t.Surface)).
		Bold(true).
		Padding(0, 1).
		Render("parley")

	parts := []string{logo, bar(t.Muted).Render("dialog gallery")}

	if job, ok := m.jobs.Snapshot().Active(); ok {
		parts = append(parts, bar(t.Info).Render(fmt.Sprintf("⚙ %s %d%%", job.Name, int(job.Progress*100))))
	}
	parts = append(parts, bar(t.Muted).Render(fmt.Sprintf("events: %d", m.events.Len())))

	sep := bar(t.Faint).Render("  ")
	return fillLine(strings.Join(parts, sep), m.width, bar(t.Text))
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	t := m.th
	bar := func(fg string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(t.Surface))
	}

	type hint struct{ key, desc string }
	var hints []hint
	switch {
	case m.dialogVisible():
		hints = []hint{
			{"tab", "Move"},
			{"enter", "Confirm"},
			{"esc", "Close"},
		}
	case m.focusedPane == paneFeed:
		hints = []hint{
			{"j/k", "Navigate"},
			{"y", "Copy"},
			{"c", "Clear"},
			{"tab", "Demos"},
			{"q", "Quit"},
		}
	default:
		hints = []hint{
			{"enter", "Open"},
			{"j/k", "Navigate"},
			{"f", "Feed"},
			{"?", "Help"},
			{"q", "Quit"},
		}
	}

	colon := bar(t.Faint).Render(":")
	segments := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		segments = append(segments, bar(t.Accent).Render(h.key)+colon+bar(t.Muted).Render(h.desc))
	}
	segments = append(segments, bar(t.Accent).Render("T")+colon+bar(t.Faint).Render(m.th.Name))

	sep := bar(t.Faint).Render("  ")
	return fillLine(strings.Join(segments, sep), m.width, bar(t.Text))
}

// renderContent renders the demo list and, when enabled and the terminal is
// wide enough, the event feed beside it.
func (m Model) renderContent() string {
	contentH := m.height - 2
	if contentH < 1 {
		contentH = 1
	}
	register := !m.dialogVisible()

	if !m.showFeed || m.width < feedMinWidth {
		return strings.Join(m.renderDemoList(m.width, contentH, 0, 2, register), "\n")
	}

	gap := 2
	feedW := m.width - listPaneWidth - gap
	listLines := m.renderDemoList(listPaneWidth, contentH, 0, 2, register)
	feedLines := m.renderFeed(feedW, contentH, listPaneWidth+gap, 2, register)

	var b strings.Builder
	for i := 0; i < contentH; i++ {
		b.WriteString(listLines[i])
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(feedLines[i])
		if i < contentH-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDemoList builds the demo pane as width-padded lines.
func (m *Model) renderDemoList(width, height, x0, y0 int, register bool) []string {
	s := m.th.Styles()
	focused := m.focusedPane == paneList

	title := s.FaintText.Render("DEMOS")
	if focused {
		title = s.AccentText.Render("DEMOS")
	}
	lines := []string{padTo(title, width)}

	if register {
		m.mouse.AddRect(regionList, x0, y0, width, height, nil)
	}

	nameW := 18
	descW := width - nameW - 3
	for i, d := range demoCatalog() {
		selected := i == m.selectedRow
		cursor := "  "
		if selected {
			cursor = s.AccentText.Render("› ")
		}
		name := fmt.Sprintf("%-*s", nameW, d.name)
		switch {
		case selected && focused:
			name = s.Selected.Render(name)
		case selected:
			name = s.AccentText.Render(name)
		default:
			name = s.Text.Render(name)
		}
		line := cursor + name
		if descW > 8 {
			desc := d.desc
			if len(desc) > descW {
				desc = desc[:descW-1] + "…"
			}
			line += " " + s.MutedText.Render(desc)
		}
		if register {
			m.mouse.AddRect(demoRowPrefix+strconv.Itoa(i), x0, y0+1+i, width, 1, i)
		}
		lines = append(lines, padTo(line, width))
	}

	return padPane(lines, width, height)
}

// padTo pads a line with spaces to the given display width.
func padTo(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

// padPane pads or trims a pane to exactly height lines.
func padPane(lines []string, width, height int) []string {
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines[:height]
}

// fillLine pads a bar line to the terminal width with the bar background.
func fillLine(line string, width int, pad lipgloss.Style) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return line
	}
	return line + pad.Render(strings.Repeat(" ", width-w))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouseEnabled {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
