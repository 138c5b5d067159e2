package dialog

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func listItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	return items
}

func TestListMarksSelection(t *testing.T) {
	sel := 1
	s := List("pick", []string{"one", "two", "three"}, &sel)
	ctx := testRenderContext(40)

	r := s.Render(ctx)
	if !strings.Contains(r.Content, "› two") {
		t.Errorf("selection marker missing:\n%s", r.Content)
	}
	if strings.Contains(r.Content, "› one") {
		t.Errorf("marker on unselected row:\n%s", r.Content)
	}
}

func TestListWindowFollowsSelection(t *testing.T) {
	tests := []struct {
		name      string
		sel       int
		wantAbove bool
		wantBelow bool
		wantRow   string
	}{
		{"top", 0, false, true, "item-0"},
		{"middle", 10, true, true, "item-10"},
		{"bottom", 19, true, false, "item-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.sel
			s := List("pick", listItems(20), &sel, WithMaxVisible(5))
			r := s.Render(testRenderContext(40))

			if got := strings.Contains(r.Content, moreAbove); got != tt.wantAbove {
				t.Errorf("above indicator = %v, want %v", got, tt.wantAbove)
			}
			if got := strings.Contains(r.Content, moreBelow); got != tt.wantBelow {
				t.Errorf("below indicator = %v, want %v", got, tt.wantBelow)
			}
			if !strings.Contains(r.Content, "› "+tt.wantRow) {
				t.Errorf("selected row %q not visible:\n%s", tt.wantRow, r.Content)
			}
		})
	}
}

func TestListFocusableCoversIndicators(t *testing.T) {
	sel := 10
	s := List("pick", listItems(20), &sel, WithMaxVisible(5))
	r := s.Render(testRenderContext(40))

	if len(r.Focusables) != 1 {
		t.Fatalf("focusables = %d, want 1", len(r.Focusables))
	}
	// Five rows plus both overflow indicators.
	if got := r.Focusables[0].Height; got != 7 {
		t.Errorf("focusable height = %d, want 7", got)
	}
	if got := measureHeight(r.Content); got != 7 {
		t.Errorf("rendered height = %d, want 7", got)
	}
}

func TestListClampsOutOfRangeSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  int
		want string
	}{
		{"negative", -5, "› item-0"},
		{"overflow", 99, "› item-4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.sel
			s := List("pick", listItems(5), &sel)
			r := s.Render(testRenderContext(40))
			if !strings.Contains(r.Content, tt.want) {
				t.Errorf("want %q in:\n%s", tt.want, r.Content)
			}
		})
	}
}

func TestListHomeEnd(t *testing.T) {
	sel := 5
	s := List("pick", listItems(10), &sel)

	if action, _ := s.Update(keyMsg(tea.KeyEnd), "pick"); action != "pick" {
		t.Fatalf("end not consumed, action = %q", action)
	}
	if sel != 9 {
		t.Fatalf("selection = %d after end, want 9", sel)
	}
	s.Update(keyMsg(tea.KeyHome), "pick")
	if sel != 0 {
		t.Errorf("selection = %d after home, want 0", sel)
	}
}

func TestListIgnoresInputWhenUnfocused(t *testing.T) {
	sel := 0
	s := List("pick", listItems(3), &sel)

	if action, _ := s.Update(keyMsg(tea.KeyDown), "other"); action != "" {
		t.Errorf("unfocused list consumed input")
	}
	if sel != 0 {
		t.Errorf("selection moved to %d without focus", sel)
	}
}

func TestEmptyListRendersNothing(t *testing.T) {
	sel := 0
	s := List("pick", nil, &sel)
	if r := s.Render(testRenderContext(40)); r.Content != "" {
		t.Errorf("empty list rendered %q", r.Content)
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefgh", 5, "abcd…"},
		{"unbounded", 0, "unbounded"},
	}
	for _, tt := range tests {
		if got := truncateLabel(tt.label, tt.width); got != tt.want {
			t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.label, tt.width, got, tt.want)
		}
	}
}
