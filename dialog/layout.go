package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/parley-tui/parley/mouse"
	"github.com/parley-tui/parley/overlay"
	"github.com/parley-tui/parley/theme"
)

const (
	// DefaultWidth is the outer dialog width used when Config.Width is
	// zero. MinWidth is the floor below which the dialog stops shrinking.
	DefaultWidth = 60
	MinWidth     = 30

	// Rounded border plus Padding(1, 2) on each side.
	frameW = 6
	frameV = 4
)

// View renders the dialog over the given background and registers its hit
// regions with mh. The background is dimmed; the dialog box is centered.
// When cfg.Visible is false the background is returned untouched and no
// regions are registered. Callers clear the handler themselves at the
// start of each frame, so an invisible dialog leaves no stale regions.
func (m *Model) View(cfg Config, th theme.Theme, background string, width, height int, mh *mouse.Handler) string {
	if !cfg.Visible {
		return background
	}
	styles := m.stylesFor(th)
	box := m.renderBox(cfg, th, styles, width, height, mh)
	return overlay.Compose(background, box, width, height, styles.Backdrop)
}

// stylesFor caches built styles keyed by theme name so View does not
// rebuild them every frame.
func (m *Model) stylesFor(th theme.Theme) theme.Styles {
	if m.stylesName != th.Name || m.stylesName == "" {
		m.styles = th.Styles()
		m.stylesName = th.Name
	}
	return m.styles
}

type footerButton struct {
	id string
	x  int
	w  int
}

func (m *Model) renderBox(cfg Config, th theme.Theme, styles theme.Styles, screenW, screenH int, mh *mouse.Handler) string {
	controls := DeriveControls(cfg)

	boxWidth := cfg.Width
	if boxWidth <= 0 {
		boxWidth = DefaultWidth
	}
	if maxW := screenW - 4; maxW > 0 && boxWidth > maxW {
		boxWidth = maxW
	}
	if boxWidth < MinWidth {
		boxWidth = MinWidth
	}
	contentWidth := boxWidth - frameW

	body, focusables := m.renderBody(cfg, styles, contentWidth)
	bodyLines := splitLines(body)

	headerH := 0
	if cfg.Title != "" {
		headerH = 2
	}
	footerH := 0
	if controls.FooterVisible {
		footerH = 2
	}
	hintH := 0
	if cfg.ShowHints {
		hintH = 1
	}

	avail := screenH - frameV - headerH - footerH - hintH
	if avail < 1 {
		avail = 1
	}

	m.bodyH = len(bodyLines)
	viewH := m.bodyH
	if viewH > avail {
		viewH = avail
	}
	m.viewportH = viewH

	if m.bodyH > viewH {
		// Overflow: re-render narrower to leave a scrollbar gutter, then
		// slice the visible window. Sections may wrap to a different line
		// count at the narrower width, so the window is measured again
		// before slicing.
		body, focusables = m.renderBody(cfg, styles, contentWidth-2)
		bodyLines = splitLines(body)
		m.bodyH = len(bodyLines)
		if viewH > m.bodyH {
			viewH = m.bodyH
			m.viewportH = viewH
		}
		m.scrollTo(m.scrollOffset)
		if m.bodyH > viewH {
			visible := bodyLines[m.scrollOffset : m.scrollOffset+viewH]
			bodyLines = attachScrollbar(visible, m.scrollOffset, m.bodyH, viewH, contentWidth, styles)
		}
	} else {
		m.scrollOffset = 0
	}
	m.bodyFocusables = focusables

	footerRow, buttons := m.renderFooter(cfg, controls, styles, contentWidth)
	hintRow := ""
	if cfg.ShowHints {
		hintRow = hintLine(controls, styles, contentWidth)
	}

	lines := make([]string, 0, headerH+len(bodyLines)+footerH+hintH)
	if cfg.Title != "" {
		lines = append(lines, styles.Title.Render(runewidth.Truncate(cfg.Title, contentWidth, "…")))
	}
	bodyTop := len(lines)
	if len(bodyLines) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
			bodyTop++
		}
		lines = append(lines, bodyLines...)
	}
	footerIdx := -1
	if footerRow != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		footerIdx = len(lines)
		lines = append(lines, footerRow)
	}
	if hintRow != "" {
		lines = append(lines, hintRow)
	}

	// Lipgloss width handling fights with per-segment button styling, so
	// lines are padded by hand from their ANSI-aware display width.
	for i := range lines {
		lines[i] = padLine(lines[i], contentWidth)
	}

	box := boxStyle(cfg.Variant, th).Render(strings.Join(lines, "\n"))
	m.registerRegions(mh, box, screenW, screenH, bodyTop, viewH, footerIdx, buttons)
	return box
}

// renderBody renders the implicit body text followed by the content
// sections at the given width.
func (m *Model) renderBody(cfg Config, styles theme.Styles, width int) (string, []FocusableInfo) {
	sections := bodySections(cfg)
	ctx := RenderContext{
		Width:   width,
		Styles:  styles,
		FocusID: m.focusID,
		HoverID: m.hoverID,
	}
	rendered := make([]RenderedSection, 0, len(sections))
	for _, s := range sections {
		rendered = append(rendered, s.Render(ctx))
	}
	return joinSections(rendered)
}

func bodySections(cfg Config) []Section {
	sections := make([]Section, 0, len(cfg.Content)+2)
	if cfg.Body != "" {
		sections = append(sections, Text(cfg.Body))
		if len(cfg.Content) > 0 {
			sections = append(sections, Spacer())
		}
	}
	sections = append(sections, cfg.Content...)
	return sections
}

// renderFooter builds the right-aligned action row and reports the
// content-relative rects of the interactable actions. Non-interactable
// actions get no rect, so they cannot be clicked.
func (m *Model) renderFooter(cfg Config, controls Controls, styles theme.Styles, width int) (string, []footerButton) {
	if !controls.FooterVisible {
		return "", nil
	}

	var (
		cancel  string
		confirm string
	)
	if controls.CancelVisible {
		st := styles.Button
		switch {
		case m.focusID == CancelID:
			st = styles.ButtonFocused
		case m.hoverID == CancelID:
			st = styles.ButtonHover
		}
		cancel = st.Render(cfg.CancelLabel)
	}
	if controls.ConfirmVisible {
		label := cfg.ConfirmLabel
		var st lipgloss.Style
		switch {
		case controls.ConfirmBusy:
			st = styles.ButtonDisabled
			label = m.spin.View() + " " + label
		case !controls.ConfirmEnabled:
			st = styles.ButtonDisabled
		case cfg.Variant == VariantDanger && m.focusID == ConfirmID:
			st = styles.ButtonDangerFocused
		case cfg.Variant == VariantDanger && m.hoverID == ConfirmID:
			st = styles.ButtonDangerHover
		case cfg.Variant == VariantDanger:
			st = styles.ButtonDanger
		case m.focusID == ConfirmID:
			st = styles.ButtonFocused
		case m.hoverID == ConfirmID:
			st = styles.ButtonHover
		default:
			st = styles.Button
		}
		confirm = st.Render(label)
	}

	cancelW := ansi.StringWidth(cancel)
	confirmW := ansi.StringWidth(confirm)

	// Confirm hugs the right edge, cancel sits to its left.
	confirmX := width - confirmW
	if confirmX < 0 {
		confirmX = 0
	}
	cancelX := confirmX - cancelW
	if cancel != "" && confirm != "" {
		cancelX -= 2
	}
	if cancelX < 0 {
		cancelX = 0
	}

	var row strings.Builder
	var buttons []footerButton
	if cancel != "" {
		if cancelX > 0 {
			row.WriteString(strings.Repeat(" ", cancelX))
		}
		row.WriteString(cancel)
		if controls.CancelEnabled {
			buttons = append(buttons, footerButton{id: CancelID, x: cancelX, w: cancelW})
		}
		if confirm != "" {
			row.WriteString("  ")
		}
	} else if confirm != "" && confirmX > 0 {
		row.WriteString(strings.Repeat(" ", confirmX))
	}
	if confirm != "" {
		row.WriteString(confirm)
		if controls.ConfirmEnabled {
			buttons = append(buttons, footerButton{id: ConfirmID, x: confirmX, w: confirmW})
		}
	}
	return row.String(), buttons
}

func hintLine(controls Controls, styles theme.Styles, width int) string {
	parts := make([]string, 0, 3)
	if controls.FooterVisible {
		parts = append(parts, "tab move")
	}
	if controls.ConfirmEnabled {
		parts = append(parts, "enter confirm")
	}
	parts = append(parts, "esc close")
	return styles.Hint.Render(runewidth.Truncate(strings.Join(parts, " · "), width, "…"))
}

// registerRegions adds the dialog's hit regions for this frame. Order
// matters: later regions win, so buttons and body focusables are added
// after the surface and backdrop.
func (m *Model) registerRegions(mh *mouse.Handler, box string, screenW, screenH, bodyTop, viewH, footerIdx int, buttons []footerButton) {
	if mh == nil {
		return
	}
	boxW, boxH := overlay.Size(box)
	x, y := overlay.Offsets(boxW, boxH, screenW, screenH)

	// Content origin inside the border and padding.
	contentX := x + frameW/2
	contentY := y + frameV/2

	mh.AddRect(regionBackdrop, 0, 0, screenW, screenH, nil)
	mh.AddRect(regionSurface, x, y, boxW, boxH, nil)

	for _, f := range m.bodyFocusables {
		fy := f.OffsetY - m.scrollOffset
		h := f.Height
		if fy+h <= 0 || fy >= viewH {
			continue
		}
		if fy < 0 {
			h += fy
			fy = 0
		}
		if fy+h > viewH {
			h = viewH - fy
		}
		mh.AddRect(f.ID, contentX+f.OffsetX, contentY+bodyTop+fy, f.Width, h, nil)
	}
	if footerIdx >= 0 {
		for _, b := range buttons {
			mh.AddRect(b.id, contentX+b.x, contentY+footerIdx, b.w, 1, nil)
		}
	}
}

func boxStyle(v Variant, th theme.Theme) lipgloss.Style {
	border := th.Accent
	switch v {
	case VariantDanger:
		border = th.Danger
	case VariantWarning:
		border = th.Warning
	case VariantInfo:
		border = th.Info
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2)
}

// attachScrollbar pads each visible line and appends a proportional
// scrollbar column at the right edge.
func attachScrollbar(lines []string, offset, total, viewH, width int, styles theme.Styles) []string {
	thumbH := viewH * viewH / total
	if thumbH < 1 {
		thumbH = 1
	}
	thumbTop := 0
	if denom := total - viewH; denom > 0 {
		thumbTop = offset * (viewH - thumbH) / denom
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		bar := styles.FaintText.Render("│")
		if i >= thumbTop && i < thumbTop+thumbH {
			bar = styles.AccentText.Render("█")
		}
		out[i] = padLine(line, width-1) + bar
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// padLine right-pads a line to width using its display width, ignoring
// ANSI sequences.
func padLine(line string, width int) string {
	if pad := width - ansi.StringWidth(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}
