package gallery

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-tui/parley/dialog"
	"github.com/parley-tui/parley/internal/config"
	"github.com/parley-tui/parley/internal/eventlog"
	"github.com/parley-tui/parley/internal/jobs"
	"github.com/parley-tui/parley/internal/prefs"
)

func testModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Events == nil {
		opts.Events = eventlog.New(50)
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func pressRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func hasEvent(log *eventlog.Log, substr string) bool {
	for _, e := range log.Events() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func waitForJob(t *testing.T, store *jobs.Store, id int) jobs.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if job, ok := store.Job(id); ok && !job.Running() {
			return job
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("job did not finish in time")
	return jobs.Job{}
}

// renderedBody renders the active demo's content sections the way the
// dialog body would, so tests can assert on conditional sections.
func renderedBody(m *Model) string {
	ctx := dialog.RenderContext{Width: 54, Styles: m.th.Styles()}
	var b strings.Builder
	for _, s := range m.demoConfig().Content {
		b.WriteString(s.Render(ctx).Content)
		b.WriteString("\n")
	}
	return b.String()
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{})
	if m.tick != defaultTick {
		t.Fatalf("tick = %v, want %v", m.tick, defaultTick)
	}
	if m.th.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox fallback", m.th.Name)
	}
	if !m.feedFollow {
		t.Fatal("feedFollow should start true")
	}
	if m.dialogVisible() {
		t.Fatal("no dialog should be open at start")
	}
	if !m.hints || !m.dismissOnBackdrop || !m.mouseEnabled {
		t.Fatal("built-in config defaults were not applied")
	}
}

func TestDemoConfig_HiddenWhenNoDemoActive(t *testing.T) {
	m := testModel(t, Options{})
	cfg := m.demoConfig()
	if cfg.Visible {
		t.Fatal("config should be hidden with no active demo")
	}
}

func TestDemoConfig_ConfirmDemo(t *testing.T) {
	m := testModel(t, Options{})
	m.openDemo(demoConfirm)

	cfg := m.demoConfig()
	if !cfg.Visible {
		t.Fatal("config should be visible")
	}
	if cfg.Variant != dialog.VariantDanger {
		t.Fatalf("Variant = %v, want VariantDanger", cfg.Variant)
	}
	if cfg.ConfirmLabel != "Delete" || cfg.CancelLabel != "Keep" {
		t.Fatalf("labels = %q/%q, want Delete/Keep", cfg.ConfirmLabel, cfg.CancelLabel)
	}
}

func TestDemoConfig_FormGatesConfirmOnEmptyName(t *testing.T) {
	m := testModel(t, Options{})
	m.openDemo(demoForm)

	if cfg := m.demoConfig(); !cfg.ConfirmDisabled {
		t.Fatal("confirm should be disabled while the name is empty")
	}

	m.nameInput.SetValue("Archive 2024")
	if cfg := m.demoConfig(); cfg.ConfirmDisabled {
		t.Fatal("confirm should be enabled once a name is entered")
	}

	m.nameInput.SetValue("   ")
	if cfg := m.demoConfig(); !cfg.ConfirmDisabled {
		t.Fatal("whitespace-only name should keep confirm disabled")
	}
}

func TestDemoConfig_FormNoticeFollowsName(t *testing.T) {
	m := testModel(t, Options{})
	m.openDemo(demoForm)

	if got := renderedBody(&m); !strings.Contains(got, "needs a name") {
		t.Errorf("empty name should show the rename notice, body = %q", got)
	}

	m.nameInput.SetValue("Archive 2024")
	if got := renderedBody(&m); strings.Contains(got, "needs a name") {
		t.Errorf("notice should clear once a name is entered, body = %q", got)
	}
}

func TestDemoConfig_ThemeSwatches(t *testing.T) {
	m := testModel(t, Options{})
	m.openDemo(demoTheme)

	if n := strings.Count(renderedBody(&m), "██"); n != 5 {
		t.Errorf("swatch blocks = %d, want 5", n)
	}
}

func TestDemoConfig_BusyTracksJobState(t *testing.T) {
	store := &jobs.Store{}
	m := testModel(t, Options{Jobs: store})
	m.openDemo(demoBusy)

	if cfg := m.demoConfig(); cfg.Busy {
		t.Fatal("dialog should not be busy before a job starts")
	}

	m.busyJob = store.Begin("export library")
	if cfg := m.demoConfig(); !cfg.Busy {
		t.Fatal("dialog should be busy while the job runs")
	}

	store.Finish(m.busyJob, nil)
	if cfg := m.demoConfig(); cfg.Busy {
		t.Fatal("dialog should not be busy after the job finished")
	}
}

func TestConfirmIntentClosesDialogAndLogs(t *testing.T) {
	log := eventlog.New(50)
	m := testModel(t, Options{Events: log})
	m, _ = apply(t, m, press(tea.KeyEnter)) // open the selected demo

	if m.activeDemo != demoConfirm {
		t.Fatalf("activeDemo = %v, want demoConfirm", m.activeDemo)
	}

	m, _ = apply(t, m, demoConfirmedMsg{id: demoConfirm})
	if m.dialogVisible() {
		t.Fatal("dialog should close after confirm")
	}
	if !hasEvent(log, "deleted") {
		t.Fatal("confirm should add a deletion event")
	}
}

func TestEscapeRoutedThroughDialogClosesDemo(t *testing.T) {
	m := testModel(t, Options{})
	m, _ = apply(t, m, press(tea.KeyEnter))

	m, cmd := apply(t, m, press(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("escape should produce a dismiss command")
	}
	msg := cmd()
	dismissed, ok := msg.(demoDismissedMsg)
	if !ok {
		t.Fatalf("command produced %T, want demoDismissedMsg", msg)
	}
	m, _ = apply(t, m, dismissed)
	if m.dialogVisible() {
		t.Fatal("dialog should close after the dismiss intent lands")
	}
}

func TestBusyDemoRunsJobToCompletion(t *testing.T) {
	store := &jobs.Store{}
	runner := jobs.NewRunner(store, time.Millisecond)
	log := eventlog.New(50)
	m := testModel(t, Options{Jobs: store, Runner: runner, Events: log})

	m.openDemo(demoBusy)
	m, _ = apply(t, m, demoConfirmedMsg{id: demoBusy})

	if m.busyJob == 0 {
		t.Fatal("confirm should start a job")
	}
	if !m.dialogVisible() {
		t.Fatal("busy dialog should stay open while the job runs")
	}

	job := waitForJob(t, store, m.busyJob)
	if job.State != jobs.StateDone {
		t.Fatalf("job state = %q, want done", job.State)
	}

	m, _ = apply(t, m, tickMsg(time.Now()))
	if m.dialogVisible() {
		t.Fatal("dialog should close once the job is done")
	}
	if m.busyJob != 0 {
		t.Fatal("finished job should no longer be tracked")
	}
	if !hasEvent(log, "export finished") {
		t.Fatal("completion should add a success event")
	}
}

func TestCancelWhileBusyKeepsJobRunning(t *testing.T) {
	store := &jobs.Store{}
	runner := jobs.NewRunner(store, time.Millisecond)
	log := eventlog.New(50)
	m := testModel(t, Options{Jobs: store, Runner: runner, Events: log})

	m.openDemo(demoBusy)
	m, _ = apply(t, m, demoConfirmedMsg{id: demoBusy})
	id := m.busyJob

	m, _ = apply(t, m, demoCancelledMsg{id: demoBusy})
	if m.dialogVisible() {
		t.Fatal("cancel should close the dialog")
	}
	if m.busyJob != id {
		t.Fatal("the job should still be tracked after cancel")
	}

	waitForJob(t, store, id)
	m, _ = apply(t, m, tickMsg(time.Now()))
	if m.busyJob != 0 {
		t.Fatal("tick should notice the finished background job")
	}
	if !hasEvent(log, "export finished") {
		t.Fatal("background completion should still be reported")
	}
}

func TestKeyNavigationAndOpen(t *testing.T) {
	m := testModel(t, Options{})

	m, _ = apply(t, m, pressRune('j'))
	m, _ = apply(t, m, pressRune('j'))
	if m.selectedRow != 2 {
		t.Fatalf("selectedRow = %d, want 2", m.selectedRow)
	}

	m, _ = apply(t, m, pressRune('k'))
	if m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want 1", m.selectedRow)
	}

	m, _ = apply(t, m, pressRune('G'))
	if m.selectedRow != len(demoCatalog())-1 {
		t.Fatalf("selectedRow = %d, want last", m.selectedRow)
	}
	m, _ = apply(t, m, pressRune('g'))
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d, want 0", m.selectedRow)
	}

	m, _ = apply(t, m, press(tea.KeyEnter))
	if m.activeDemo != demoCatalog()[0].id {
		t.Fatalf("activeDemo = %v, want first catalog entry", m.activeDemo)
	}
}

func TestHelpKeyOpensHelpDialog(t *testing.T) {
	m := testModel(t, Options{})
	m, _ = apply(t, m, pressRune('?'))

	if m.activeDemo != demoHelp {
		t.Fatalf("activeDemo = %v, want demoHelp", m.activeDemo)
	}
	cfg := m.demoConfig()
	if !cfg.HideCancel {
		t.Fatal("help dialog should hide its cancel action")
	}
	if cfg.Body == "" {
		t.Fatal("help body should list the key bindings")
	}
}

func TestGalleryKeysIgnoredWhileDialogOpen(t *testing.T) {
	m := testModel(t, Options{})
	m, _ = apply(t, m, press(tea.KeyEnter))
	before := m.selectedRow

	m, _ = apply(t, m, pressRune('j'))
	if m.selectedRow != before {
		t.Fatal("demo selection should not move while a dialog is open")
	}
	if !m.dialogVisible() {
		t.Fatal("dialog should still be open")
	}
}

func TestThemeCyclePersistsToPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := testModel(t, Options{PrefsPath: path, Prefs: prefs.Prefs{Theme: "Nightfox", ShowFeed: true}})

	m, _ = apply(t, m, pressRune('T'))
	if m.th.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.th.Name)
	}

	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
	if !saved.ShowFeed {
		t.Fatal("feed visibility should survive the theme save")
	}
}

func TestThemeDemoAppliesSelection(t *testing.T) {
	log := eventlog.New(50)
	m := testModel(t, Options{Events: log})
	m.openDemo(demoTheme)

	m.themeRow = 2 // Slate
	m, _ = apply(t, m, demoConfirmedMsg{id: demoTheme})

	if m.th.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.th.Name)
	}
	if m.dialogVisible() {
		t.Fatal("theme dialog should close after apply")
	}
	if !hasEvent(log, "theme set to Slate") {
		t.Fatal("applying a theme should add an event")
	}
}

func TestConfigReloadOnTick(t *testing.T) {
	store := config.NewStore(config.Default())
	log := eventlog.New(50)
	m := testModel(t, Options{Config: store, Events: log})

	if !m.hints {
		t.Fatal("hints should start enabled")
	}

	cfg := config.Default()
	cfg.Hints = false
	cfg.DialogWidth = 48
	store.Set(cfg)

	m, _ = apply(t, m, tickMsg(time.Now()))
	if m.hints {
		t.Fatal("hints should be off after the reload")
	}
	if m.dialogWidth != 48 {
		t.Fatalf("dialogWidth = %d, want 48", m.dialogWidth)
	}
	if !hasEvent(log, "configuration reloaded") {
		t.Fatal("a reload event should be added")
	}
}

func TestTickWithoutChangesAddsNoEvent(t *testing.T) {
	store := config.NewStore(config.Default())
	log := eventlog.New(50)
	m := testModel(t, Options{Config: store, Events: log})

	before := log.Len()
	_, cmd := apply(t, m, tickMsg(time.Now()))
	if log.Len() != before {
		t.Fatal("an unchanged config should not add events")
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func TestViewRegistersDemoRowsOnlyWithoutDialog(t *testing.T) {
	m := testModel(t, Options{})
	m.View()

	if !hasRegionID(m, demoRowPrefix+"0") {
		t.Fatal("demo rows should be clickable with no dialog open")
	}

	m, _ = apply(t, m, press(tea.KeyEnter))
	m.View()
	if hasRegionID(m, demoRowPrefix+"0") {
		t.Fatal("demo rows should not be clickable behind a dialog")
	}
	if !hasRegionID(m, "dialog-surface") {
		t.Fatal("the dialog surface should register a region")
	}
}

func hasRegionID(m Model, id string) bool {
	for _, r := range m.mouse.Regions() {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestMouseClickSelectsAndDoubleClickOpens(t *testing.T) {
	m := testModel(t, Options{})
	m.View()

	click := tea.MouseMsg{X: 4, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = apply(t, m, click)
	if m.selectedRow != 1 {
		t.Fatalf("selectedRow = %d, want 1 after clicking the second row", m.selectedRow)
	}
	if m.dialogVisible() {
		t.Fatal("a single click should not open a demo")
	}

	m, _ = apply(t, m, click)
	if m.activeDemo != demoCatalog()[1].id {
		t.Fatalf("activeDemo = %v, want the clicked demo", m.activeDemo)
	}
}

func TestFeedToggleSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := testModel(t, Options{PrefsPath: path, Prefs: prefs.Prefs{Theme: "Nightfox", ShowFeed: true}})

	m, _ = apply(t, m, pressRune('f'))
	if m.showFeed {
		t.Fatal("feed should be hidden after toggling")
	}
	if m.focusedPane != paneList {
		t.Fatal("hiding the feed should return focus to the list")
	}

	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if saved.ShowFeed {
		t.Fatal("hidden feed should be persisted")
	}
}

func TestClearFeedResetsSelection(t *testing.T) {
	log := eventlog.New(50)
	m := testModel(t, Options{Events: log})
	log.Add(eventlog.LevelInfo, "one")
	log.Add(eventlog.LevelInfo, "two")
	m.feedRow = 1
	m.feedFollow = false

	m, _ = apply(t, m, pressRune('c'))
	if log.Len() != 0 {
		t.Fatal("clear should empty the feed")
	}
	if !m.feedFollow {
		t.Fatal("clear should resume following")
	}
}

func TestYankAddsOutcomeEvent(t *testing.T) {
	log := eventlog.New(50)
	m := testModel(t, Options{Events: log})
	log.Add(eventlog.LevelInfo, "something happened")

	before := log.Len()
	m.yankEvent()
	if log.Len() != before+1 {
		t.Fatalf("yank should add exactly one outcome event, got %d new", log.Len()-before)
	}
}

func TestYankWithEmptyFeedIsInert(t *testing.T) {
	log := eventlog.New(50)
	m := testModel(t, Options{Events: log})
	m.yankEvent()
	if log.Len() != 0 {
		t.Fatal("yanking an empty feed should do nothing")
	}
}
