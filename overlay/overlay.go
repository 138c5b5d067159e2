package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultDim is the dim treatment used when the caller has no theme style
// at hand. Existing ANSI codes are stripped and a gray foreground applied
// because SGR 2 (faint) does not reliably combine with color codes in most
// terminals.
var DefaultDim = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Offsets returns the top-left position that centers content of the given
// size on the screen, clamped to the origin when the content is larger.
// Views that overlay content and views that register hit regions for it
// must agree on position; both call this.
func Offsets(contentWidth, contentHeight, screenWidth, screenHeight int) (x, y int) {
	x = (screenWidth - contentWidth) / 2
	y = (screenHeight - contentHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Size returns the visual dimensions of a rendered block.
func Size(content string) (width, height int) {
	lines := strings.Split(content, "\n")
	return maxLineWidth(lines), len(lines)
}

// Compose centers fg over bg on a width x height screen, dimming every
// background cell that remains visible. The dim style is applied to
// ANSI-stripped background text so the result has a single, predictable
// treatment behind the foreground block.
func Compose(bg, fg string, width, height int, dim lipgloss.Style) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	fgWidth := maxLineWidth(fgLines)
	fgHeight := len(fgLines)
	startX, startY := Offsets(fgWidth, fgHeight, width, height)

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}

		fgRow := y - startY
		if fgRow >= 0 && fgRow < fgHeight {
			rows = append(rows, compositeRow(bgLine, fgLines[fgRow], startX, fgWidth, width, dim))
		} else {
			rows = append(rows, dimLine(bgLine, dim))
		}
	}

	return strings.Join(rows, "\n")
}

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// dimLine strips ANSI codes and applies the dim style.
func dimLine(s string, dim lipgloss.Style) string {
	return dim.Render(ansi.Strip(s))
}

// compositeRow splices fgLine into bgLine at startX, dimming the background
// segments on either side. Substring math is visual-width based so wide
// runes and styled text in the background split correctly.
func compositeRow(bgLine, fgLine string, startX, fgWidth, totalWidth int, dim lipgloss.Style) string {
	var row strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		leftWidth := ansi.StringWidth(left)
		row.WriteString(dim.Render(left))
		if leftWidth < startX {
			row.WriteString(strings.Repeat(" ", startX-leftWidth))
		}
	}

	row.WriteString(fgLine)

	rightStart := startX + fgWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		right := ansi.Cut(stripped, rightStart, bgWidth)
		row.WriteString(dim.Render(right))
	}

	return row.String()
}
