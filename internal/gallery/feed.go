package gallery

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"

	"github.com/parley-tui/parley/internal/eventlog"
)

const feedTimeFormat = "15:04:05"

// feedSelection resolves the selected feed row. While following, the
// selection pins to the newest event.
func (m *Model) feedSelection(count int) int {
	if count == 0 {
		return 0
	}
	if m.feedFollow {
		return count - 1
	}
	sel := m.feedRow
	if sel < 0 {
		sel = 0
	}
	if sel >= count {
		sel = count - 1
	}
	return sel
}

// moveFeed shifts the feed selection. Landing on the newest event resumes
// following.
func (m *Model) moveFeed(delta int) {
	count := m.events.Len()
	if count == 0 {
		return
	}
	sel := m.feedSelection(count) + delta
	if sel < 0 {
		sel = 0
	}
	if sel >= count {
		sel = count - 1
	}
	m.feedRow = sel
	m.feedFollow = sel == count-1
}

// feedWindow returns the half-open range of rows to show, keeping the
// selection centered where possible.
func feedWindow(sel, count, visible int) (start, end int) {
	if visible <= 0 || count <= visible {
		return 0, count
	}
	start = sel - visible/2
	if start < 0 {
		start = 0
	}
	end = start + visible
	if end > count {
		end = count
		start = end - visible
	}
	return start, end
}

// renderFeed builds the event pane as width-padded lines. When register is
// set, each visible row gets a hit region carrying its event index.
func (m *Model) renderFeed(width, height, x0, y0 int, register bool) []string {
	s := m.th.Styles()
	focused := m.focusedPane == paneFeed

	events := m.events.Events()
	count := len(events)

	title := s.FaintText.Render("EVENTS")
	if focused {
		title = s.AccentText.Render("EVENTS")
	}
	lines := []string{padTo(title, width)}

	if register {
		m.mouse.AddRect(regionFeed, x0, y0, width, height, nil)
	}

	if count == 0 {
		lines = append(lines, padTo(s.FaintText.Render("no events yet"), width))
		return padPane(lines, width, height)
	}

	sel := m.feedSelection(count)
	start, end := feedWindow(sel, count, height-1)

	// cursor(2) + time(8) + gap(1) + badge(9) + gap(1)
	msgW := width - 21
	if msgW < 8 {
		msgW = 8
	}

	for i := start; i < end; i++ {
		e := events[i]
		cursor := "  "
		if i == sel {
			cursor = s.AccentText.Render("› ")
		}
		ts := s.FaintText.Render(e.Time.Format(feedTimeFormat))
		badge := s.LevelStyle(e.Level).Render(fmt.Sprintf("%-7s", strings.ToUpper(e.Level)))
		msg := runewidth.Truncate(e.Message, msgW, "…")
		switch {
		case i == sel && focused:
			msg = s.Selected.Render(msg)
		case i == sel:
			msg = s.Text.Render(msg)
		default:
			msg = s.MutedText.Render(msg)
		}
		line := cursor + ts + " " + badge + " " + msg
		if register {
			m.mouse.AddRect(fmt.Sprintf("%s%d", feedRowPrefix, i), x0, y0+1+(i-start), width, 1, i)
		}
		lines = append(lines, padTo(line, width))
	}

	return padPane(lines, width, height)
}

// yankEvent copies the selected feed line to the system clipboard.
func (m *Model) yankEvent() {
	events := m.events.Events()
	if len(events) == 0 {
		return
	}
	e := events[m.feedSelection(len(events))]
	line := fmt.Sprintf("%s [%s] %s", e.Time.Format(feedTimeFormat), strings.ToUpper(e.Level), e.Message)
	if err := clipboard.WriteAll(line); err != nil {
		m.events.Add(eventlog.LevelWarn, "clipboard: %v", err)
		return
	}
	m.events.Add(eventlog.LevelDebug, "copied event line to clipboard")
}
