package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-tui/parley/theme"
)

func testRenderContext(width int) RenderContext {
	return RenderContext{
		Width:  width,
		Styles: theme.Default().Styles(),
	}
}

func TestTextWrapsToWidth(t *testing.T) {
	ctx := testRenderContext(10)
	r := Text("alpha beta gamma delta").Render(ctx)

	if got := measureHeight(r.Content); got < 2 {
		t.Errorf("height = %d, want wrapped onto multiple lines", got)
	}
	if len(r.Focusables) != 0 {
		t.Errorf("text section reported %d focusables", len(r.Focusables))
	}
}

func TestEmptyTextIsSkipped(t *testing.T) {
	r := Text("").Render(testRenderContext(40))
	if r.Content != "" {
		t.Errorf("empty text rendered %q", r.Content)
	}
}

func TestSpacerIsOneLine(t *testing.T) {
	r := Spacer().Render(testRenderContext(40))
	if got := measureHeight(r.Content); got != 1 {
		t.Errorf("spacer height = %d, want 1", got)
	}
}

func TestCheckboxRender(t *testing.T) {
	checked := false
	s := Checkbox("opt", "Keep backups", &checked)
	ctx := testRenderContext(40)

	r := s.Render(ctx)
	if !strings.Contains(r.Content, "[ ]") {
		t.Errorf("unchecked box missing from %q", r.Content)
	}

	checked = true
	r = s.Render(ctx)
	if !strings.Contains(r.Content, "[x]") {
		t.Errorf("checked box missing from %q", r.Content)
	}

	if len(r.Focusables) != 1 {
		t.Fatalf("focusables = %d, want 1", len(r.Focusables))
	}
	f := r.Focusables[0]
	if f.ID != "opt" || f.Height != 1 {
		t.Errorf("focusable = %+v", f)
	}
	if want := len("[x] Keep backups"); f.Width != want {
		t.Errorf("focusable width = %d, want %d", f.Width, want)
	}
}

func TestCheckboxNilValue(t *testing.T) {
	s := Checkbox("opt", "Option", nil)
	r := s.Render(testRenderContext(40))
	if !strings.Contains(r.Content, "[ ]") {
		t.Errorf("nil-value checkbox rendered %q", r.Content)
	}
	if action, _ := s.Update(keyMsg(tea.KeyEnter), "opt"); action != "" {
		t.Errorf("nil-value checkbox consumed input")
	}
}

func TestInputRender(t *testing.T) {
	ti := textinput.New()
	s := Input("name", "File name", &ti)

	r := s.Render(testRenderContext(40))
	if !strings.Contains(r.Content, "File name") {
		t.Errorf("label missing from %q", r.Content)
	}
	if len(r.Focusables) != 1 || r.Focusables[0].Height != 2 {
		t.Errorf("focusables = %+v, want one of height 2", r.Focusables)
	}
}

func TestInputFocusFollowsDialogFocus(t *testing.T) {
	ti := textinput.New()
	s := Input("name", "File name", &ti)

	action, _ := s.Update(runeMsg('a'), "name")
	if action != "name" {
		t.Fatalf("action = %q, want name", action)
	}
	if !ti.Focused() {
		t.Fatal("input not focused while its section holds focus")
	}
	if got := ti.Value(); got != "a" {
		t.Fatalf("value = %q, want a", got)
	}

	s.Update(runeMsg('b'), "")
	if ti.Focused() {
		t.Error("input still focused after dialog focus moved away")
	}
	if got := ti.Value(); got != "a" {
		t.Errorf("unfocused input accepted a keystroke: %q", got)
	}
}

func TestInputReleasesDialogKeys(t *testing.T) {
	ti := textinput.New()
	s := Input("name", "File name", &ti)

	for _, typ := range []tea.KeyType{tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter, tea.KeyEsc} {
		if action, _ := s.Update(keyMsg(typ), "name"); action != "" {
			t.Errorf("%v consumed by input section", typ)
		}
	}
	if got := ti.Value(); got != "" {
		t.Errorf("dialog keys leaked into input: %q", got)
	}
}

func TestWhenHidesSection(t *testing.T) {
	show := false
	s := When(func() bool { return show }, Text("conditional"))
	ctx := testRenderContext(40)

	if r := s.Render(ctx); r.Content != "" {
		t.Errorf("hidden section rendered %q", r.Content)
	}

	show = true
	if r := s.Render(ctx); !strings.Contains(r.Content, "conditional") {
		t.Errorf("visible section rendered %q", r.Content)
	}
}

func TestCustomNilFuncsAreSafe(t *testing.T) {
	s := Custom(nil, nil)
	if r := s.Render(testRenderContext(40)); r.Content != "" {
		t.Errorf("nil render produced %q", r.Content)
	}
	if action, cmd := s.Update(nil, ""); action != "" || cmd != nil {
		t.Errorf("nil update returned %q, %v", action, cmd)
	}
}

func TestJoinSectionsRebasesOffsets(t *testing.T) {
	checked := false
	ctx := testRenderContext(40)
	rendered := []RenderedSection{
		Text("one\ntwo").Render(ctx),
		Text("").Render(ctx),
		Spacer().Render(ctx),
		Checkbox("opt", "Option", &checked).Render(ctx),
	}

	content, focusables := joinSections(rendered)

	if got := measureHeight(content); got != 4 {
		t.Errorf("joined height = %d, want 4", got)
	}
	if len(focusables) != 1 {
		t.Fatalf("focusables = %d, want 1", len(focusables))
	}
	if got := focusables[0].OffsetY; got != 3 {
		t.Errorf("checkbox OffsetY = %d, want 3", got)
	}
}

func TestMeasureHeight(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\nb", 2},
		{"a\nb\nc", 3},
		{"a\n", 1},
	}
	for _, tt := range tests {
		if got := measureHeight(tt.in); got != tt.want {
			t.Errorf("measureHeight(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
