package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// ListOption adjusts a List section.
type ListOption func(*listSection)

// WithMaxVisible caps how many rows the list shows at once. The window
// follows the selection; overflow is indicated above and below.
func WithMaxVisible(n int) ListOption {
	return func(s *listSection) {
		s.maxVisible = n
	}
}

// List returns a selectable list section bound to a caller-owned selection
// index. Arrow keys move the selection while the list is focused; the
// visible window is derived from the selection so the section itself stays
// stateless.
func List(id string, items []string, selected *int, opts ...ListOption) Section {
	s := &listSection{id: id, items: items, selected: selected, maxVisible: 8}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type listSection struct {
	id         string
	items      []string
	selected   *int
	maxVisible int
}

const (
	moreAbove = "↑ more above"
	moreBelow = "↓ more below"
)

func (s *listSection) Render(ctx RenderContext) RenderedSection {
	if len(s.items) == 0 {
		return RenderedSection{}
	}

	sel := s.selection()
	start, end := s.window(sel)

	focused := ctx.FocusID == s.id
	var b strings.Builder
	height := 0

	if start > 0 {
		b.WriteString(ctx.Styles.FaintText.Render(moreAbove))
		b.WriteString("\n")
		height++
	}

	for i := start; i < end; i++ {
		label := truncateLabel(s.items[i], ctx.Width-2)
		switch {
		case i == sel && focused:
			b.WriteString(ctx.Styles.Selected.Render("› " + label))
		case i == sel:
			b.WriteString(ctx.Styles.AccentText.Render("› " + label))
		default:
			b.WriteString(ctx.Styles.Text.Render("  " + label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
		height++
	}

	if end < len(s.items) {
		b.WriteString("\n")
		b.WriteString(ctx.Styles.FaintText.Render(moreBelow))
		height++
	}

	return RenderedSection{
		Content: b.String(),
		Focusables: []FocusableInfo{{
			ID:     s.id,
			Width:  ctx.Width,
			Height: height,
		}},
	}
}

func (s *listSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.selected == nil || len(s.items) == 0 {
		return "", nil
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", nil
	}

	sel := s.selection()
	switch k.String() {
	case "up", "k":
		if sel > 0 {
			*s.selected = sel - 1
		}
		return s.id, nil
	case "down", "j":
		if sel < len(s.items)-1 {
			*s.selected = sel + 1
		}
		return s.id, nil
	case "home":
		*s.selected = 0
		return s.id, nil
	case "end":
		*s.selected = len(s.items) - 1
		return s.id, nil
	}
	return "", nil
}

// selection returns the clamped selection index.
func (s *listSection) selection() int {
	if s.selected == nil {
		return 0
	}
	sel := *s.selected
	if sel < 0 {
		return 0
	}
	if sel >= len(s.items) {
		return len(s.items) - 1
	}
	return sel
}

// window returns the half-open visible range, keeping the selection
// centered where possible.
func (s *listSection) window(sel int) (start, end int) {
	if s.maxVisible <= 0 || len(s.items) <= s.maxVisible {
		return 0, len(s.items)
	}
	start = sel - s.maxVisible/2
	if start < 0 {
		start = 0
	}
	end = start + s.maxVisible
	if end > len(s.items) {
		end = len(s.items)
		start = end - s.maxVisible
	}
	return start, end
}

// truncateLabel shortens a row label to fit, appending an ellipsis.
func truncateLabel(label string, width int) string {
	if width <= 0 {
		return label
	}
	return runewidth.Truncate(label, width, "…")
}
