package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-tui/parley/mouse"
	"github.com/parley-tui/parley/theme"
)

// Variant selects the accent treatment for a dialog.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// Reserved focus and hit-region identifiers. Section IDs supplied by the
// caller must not collide with these.
const (
	ConfirmID = "confirm"
	CancelID  = "cancel"

	regionBackdrop = "dialog-backdrop"
	regionSurface  = "dialog-surface"
)

// Config is the complete description of a dialog for one render pass. It
// is passed to every View and Update call and never retained: the caller
// owns all of it, most importantly Visible. The dialog never mutates its
// own visibility; it invokes the intent callbacks and leaves the decision
// to the caller.
type Config struct {
	// Visible mirrors the caller's open/closed state. When false the
	// dialog renders nothing and ignores input.
	Visible bool

	Title string

	// Body is convenience plain text, word-wrapped to the dialog width.
	// Content holds arbitrary sections rendered after it. Either or both
	// may be empty.
	Body    string
	Content []Section

	// Footer action labels. An absent label renders an empty action.
	ConfirmLabel string
	CancelLabel  string

	// ConfirmDisabled renders the confirm action but makes it
	// non-interactable. Distinct from hiding it.
	ConfirmDisabled bool

	// HideCancel, HideConfirm and HideFooter remove the respective
	// elements entirely. A footer whose actions are all hidden collapses.
	HideCancel  bool
	HideConfirm bool
	HideFooter  bool

	// Busy renders the confirm action with a spinner and force-disables
	// it regardless of ConfirmDisabled. The flag is purely visual here;
	// the operation it tracks belongs to the caller.
	Busy bool

	// Intent callbacks. At most one fires per user gesture; each returns
	// an optional command for the host program. Nil callbacks are inert.
	OnConfirm      func() tea.Cmd
	OnCancel       func() tea.Cmd
	OnRequestClose func() tea.Cmd

	// Variant picks the border and confirm accent. Width fixes the outer
	// dialog width; zero means DefaultWidth. ShowHints adds a key-hint
	// line under the footer. DismissOnBackdrop makes clicks outside the
	// surface fire OnRequestClose.
	Variant           Variant
	Width             int
	ShowHints         bool
	DismissOnBackdrop bool
}

// Model drives a dialog. It holds only presentation state that cannot
// contradict the caller's Config: focus and hover position, scroll offset,
// and the busy spinner phase. Construct one with New and keep it for the
// life of the program; call Reset when opening a new dialog.
type Model struct {
	keys keyMap
	spin spinner.Model

	spinning bool

	focusID string
	hoverID string

	scrollOffset int

	// Caches from the last render, consumed by focus cycling, scrolling
	// and hit-region registration.
	bodyFocusables []FocusableInfo
	viewportH      int
	bodyH          int

	styles     theme.Styles
	stylesName string
}

// New returns a dialog model with default key bindings.
func New() *Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return &Model{
		keys: defaultKeyMap(),
		spin: sp,
	}
}

// Reset clears focus, hover, scroll and spinner state. Call it when a new
// dialog opens so presentation state from the previous one does not leak.
func (m *Model) Reset() {
	m.focusID = ""
	m.hoverID = ""
	m.scrollOffset = 0
	m.spinning = false
	m.bodyFocusables = nil
	m.viewportH = 0
	m.bodyH = 0
}

// FocusedID returns the focused element ID, or "".
func (m *Model) FocusedID() string {
	return m.focusID
}

// HoveredID returns the hovered element ID, or "".
func (m *Model) HoveredID() string {
	return m.hoverID
}

// SetFocus moves focus to the given element ID. Passing "" clears focus,
// which makes enter activate the confirm action when it is enabled.
func (m *Model) SetFocus(id string) {
	m.focusID = id
}

// Update translates one host message into dialog behavior. At most one
// intent callback fires per call. When cfg.Visible is false the message is
// ignored entirely.
func (m *Model) Update(cfg Config, msg tea.Msg, mh *mouse.Handler) tea.Cmd {
	if !cfg.Visible {
		m.spinning = false
		return nil
	}
	controls := DeriveControls(cfg)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if cfg.Busy {
			m.spin, cmd = m.spin.Update(msg)
		} else {
			m.spinning = false
		}
	case tea.KeyMsg:
		cmd = m.handleKey(cfg, controls, msg)
	case tea.MouseMsg:
		if mh != nil {
			cmd = m.handleMouse(cfg, controls, mh.HandleMouse(msg))
		}
	default:
		// Cursor blinks and similar component ticks flow through to the
		// sections that asked for them.
		_, cmd = m.updateSections(cfg, msg)
	}

	// A busy confirm animates; kick the spinner once per busy period.
	if cfg.Busy && controls.ConfirmBusy && !m.spinning {
		m.spinning = true
		return tea.Batch(cmd, m.spin.Tick)
	}
	return cmd
}

func (m *Model) handleKey(cfg Config, controls Controls, k tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(k, m.keys.Dismiss):
		// The escape gesture is a dismiss request, never a cancel.
		return invoke(cfg.OnRequestClose)
	case key.Matches(k, m.keys.NextFocus):
		m.cycleFocus(cfg, controls, 1)
		return nil
	case key.Matches(k, m.keys.PrevFocus):
		m.cycleFocus(cfg, controls, -1)
		return nil
	}

	// A focused body section sees the key before the dialog does, so
	// inputs receive typing and lists receive arrows. Keys the section
	// releases fall through with any bookkeeping command it queued.
	var sectionCmd tea.Cmd
	if m.bodyFocused() {
		action, cmd := m.updateSections(cfg, k)
		if action != "" {
			return cmd
		}
		sectionCmd = cmd
	}

	switch {
	case key.Matches(k, m.keys.Activate):
		return tea.Batch(sectionCmd, m.activate(cfg, controls))
	case key.Matches(k, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(k, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(k, m.keys.PageUp):
		m.scrollBy(-m.viewportH)
	case key.Matches(k, m.keys.PageDown):
		m.scrollBy(m.viewportH)
	case key.Matches(k, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(k, m.keys.Bottom):
		m.scrollTo(m.bodyH)
	}
	return sectionCmd
}

// activate fires the intent for the focused element. With no focus the
// confirm action is the default target. Enablement is checked here against
// a fresh derivation, so a stale focus on a now-disabled action is a no-op.
func (m *Model) activate(cfg Config, controls Controls) tea.Cmd {
	switch m.focusID {
	case CancelID:
		if controls.CancelEnabled {
			return invoke(cfg.OnCancel)
		}
		return nil
	default:
		if controls.ConfirmEnabled {
			return invoke(cfg.OnConfirm)
		}
		return nil
	}
}

func (m *Model) handleMouse(cfg Config, controls Controls, action mouse.Action) tea.Cmd {
	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return nil
		}
		switch action.Region.ID {
		case regionBackdrop:
			if cfg.DismissOnBackdrop {
				return invoke(cfg.OnRequestClose)
			}
		case regionSurface:
			// Clicks on the dialog body are absorbed. Non-interactable
			// actions have no regions of their own, so clicking them
			// lands here.
		case ConfirmID:
			if controls.ConfirmEnabled {
				m.focusID = ConfirmID
				return invoke(cfg.OnConfirm)
			}
		case CancelID:
			if controls.CancelEnabled {
				m.focusID = CancelID
				return invoke(cfg.OnCancel)
			}
		default:
			if m.isBodyFocusable(action.Region.ID) {
				m.focusID = action.Region.ID
			}
		}
	case mouse.ActionHover:
		if action.Region != nil {
			m.hoverID = action.Region.ID
		} else {
			m.hoverID = ""
		}
	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region != nil {
			m.scrollBy(action.Delta)
		}
	}
	return nil
}

// cycleFocus moves focus through body focusables, then cancel, then
// confirm. Non-interactable footer actions are skipped entirely.
func (m *Model) cycleFocus(cfg Config, controls Controls, delta int) {
	order := m.focusOrder(controls)
	if len(order) == 0 {
		m.focusID = ""
		return
	}

	cur := -1
	for i, id := range order {
		if id == m.focusID {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur == -1 && delta > 0:
		next = 0
	case cur == -1:
		next = len(order) - 1
	default:
		next = (cur + delta + len(order)) % len(order)
	}
	m.focusID = order[next]
	m.ensureFocusVisible()
}

func (m *Model) focusOrder(controls Controls) []string {
	order := make([]string, 0, len(m.bodyFocusables)+2)
	for _, f := range m.bodyFocusables {
		order = append(order, f.ID)
	}
	if controls.CancelEnabled {
		order = append(order, CancelID)
	}
	if controls.ConfirmEnabled {
		order = append(order, ConfirmID)
	}
	return order
}

func (m *Model) bodyFocused() bool {
	return m.focusID != "" && m.focusID != ConfirmID && m.focusID != CancelID
}

func (m *Model) isBodyFocusable(id string) bool {
	for _, f := range m.bodyFocusables {
		if f.ID == id {
			return true
		}
	}
	return false
}

// updateSections routes a message to the body sections. The first section
// to report an action wins; commands from all sections are batched so
// focus and blink bookkeeping is never lost.
func (m *Model) updateSections(cfg Config, msg tea.Msg) (string, tea.Cmd) {
	var (
		cmds   []tea.Cmd
		action string
	)
	for _, s := range cfg.Content {
		a, cmd := s.Update(msg, m.focusID)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if action == "" && a != "" {
			action = a
		}
	}
	if len(cmds) == 0 {
		return action, nil
	}
	return action, tea.Batch(cmds...)
}

// ensureFocusVisible scrolls a body focusable into the viewport.
func (m *Model) ensureFocusVisible() {
	if !m.bodyFocused() || m.viewportH <= 0 {
		return
	}
	for _, f := range m.bodyFocusables {
		if f.ID != m.focusID {
			continue
		}
		if f.OffsetY < m.scrollOffset {
			m.scrollOffset = f.OffsetY
		} else if end := f.OffsetY + f.Height; end > m.scrollOffset+m.viewportH {
			m.scrollOffset = end - m.viewportH
		}
		return
	}
}

func (m *Model) scrollBy(delta int) {
	m.scrollTo(m.scrollOffset + delta)
}

func (m *Model) scrollTo(offset int) {
	max := m.bodyH - m.viewportH
	if max < 0 {
		max = 0
	}
	m.scrollOffset = clamp(offset, 0, max)
}

// invoke fires an intent callback, tolerating nil.
func invoke(cb func() tea.Cmd) tea.Cmd {
	if cb == nil {
		return nil
	}
	return cb()
}

func clamp(v, lo, hi int) int {
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
