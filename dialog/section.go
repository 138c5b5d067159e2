package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/parley-tui/parley/theme"
)

// RenderContext carries everything a section needs to render itself.
type RenderContext struct {
	// Width is the content width available inside the dialog frame.
	Width int
	// Styles are the prebuilt styles for the active theme.
	Styles theme.Styles
	// FocusID and HoverID identify the currently focused and hovered
	// focusable, or "" for none.
	FocusID string
	HoverID string
}

// FocusableInfo locates an interactive element inside a rendered section,
// relative to the section's own top-left corner.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// RenderedSection is a section's output for one frame. Content is joined
// into the dialog body; Focusables feed focus cycling and mouse hit
// regions. A section rendering empty Content is skipped entirely.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// Section is one block of dialog body content. Sections are rebuilt by the
// caller on every render and hold no state of their own; interactive
// sections mutate caller-owned values through pointers instead.
//
// Update receives every message routed to the dialog along with the
// current focus; sections that are not focused ignore input. The returned
// action string is "" unless the section consumed the message in a way the
// host may care about.
type Section interface {
	Render(ctx RenderContext) RenderedSection
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Text returns a section of word-wrapped body text.
func Text(text string) Section {
	return textSection{text: text}
}

type textSection struct {
	text string
}

func (s textSection) Render(ctx RenderContext) RenderedSection {
	if s.text == "" {
		return RenderedSection{}
	}
	wrapped := wordwrap.String(s.text, ctx.Width)
	return RenderedSection{Content: ctx.Styles.Text.Render(wrapped)}
}

func (s textSection) Update(tea.Msg, string) (string, tea.Cmd) {
	return "", nil
}

// Spacer returns a single blank line.
func Spacer() Section {
	return spacerSection{}
}

type spacerSection struct{}

func (spacerSection) Render(RenderContext) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) {
	return "", nil
}

// Checkbox returns a togglable section bound to a caller-owned bool.
// Space or enter toggles it while focused.
func Checkbox(id, label string, value *bool) Section {
	return checkboxSection{id: id, label: label, value: value}
}

type checkboxSection struct {
	id    string
	label string
	value *bool
}

func (s checkboxSection) Render(ctx RenderContext) RenderedSection {
	box := "[ ]"
	if s.value != nil && *s.value {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s", box, s.label)

	style := ctx.Styles.Text
	switch {
	case ctx.FocusID == s.id:
		style = ctx.Styles.AccentText.Bold(true)
	case ctx.HoverID == s.id:
		style = ctx.Styles.AccentText
	}

	return RenderedSection{
		Content: style.Render(line),
		Focusables: []FocusableInfo{{
			ID:     s.id,
			Width:  runewidth.StringWidth(line),
			Height: 1,
		}},
	}
}

func (s checkboxSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id || s.value == nil {
		return "", nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case " ", "enter":
			*s.value = !*s.value
			return s.id, nil
		}
	}
	return "", nil
}

// Input returns a labeled text-input section bound to a caller-owned
// textinput model. Keystrokes reach the input only while it is focused.
func Input(id, label string, input *textinput.Model) Section {
	return inputSection{id: id, label: label, input: input}
}

type inputSection struct {
	id    string
	label string
	input *textinput.Model
}

func (s inputSection) Render(ctx RenderContext) RenderedSection {
	if s.input == nil {
		return RenderedSection{}
	}
	label := ctx.Styles.MutedText.Render(s.label)
	if ctx.FocusID == s.id {
		label = ctx.Styles.AccentText.Render(s.label)
	}
	content := label + "\n" + s.input.View()
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID:     s.id,
			Width:  ctx.Width,
			Height: 2,
		}},
	}
}

func (s inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.input == nil {
		return "", nil
	}

	// Keep the embedded input's focus in step with the dialog's focus so
	// its cursor only blinks while this section is active.
	var cmds []tea.Cmd
	if focusID == s.id && !s.input.Focused() {
		cmds = append(cmds, s.input.Focus())
	} else if focusID != s.id && s.input.Focused() {
		s.input.Blur()
	}

	if focusID == s.id {
		if k, ok := msg.(tea.KeyMsg); ok {
			// Tab and enter belong to the dialog, everything else to the
			// input.
			switch k.Type {
			case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter, tea.KeyEsc:
			default:
				updated, cmd := s.input.Update(msg)
				*s.input = updated
				cmds = append(cmds, cmd)
				return s.id, tea.Batch(cmds...)
			}
		} else {
			updated, cmd := s.input.Update(msg)
			*s.input = updated
			cmds = append(cmds, cmd)
		}
	}
	return "", tea.Batch(cmds...)
}

// When wraps a section that only appears while cond returns true.
func When(cond func() bool, s Section) Section {
	return whenSection{cond: cond, inner: s}
}

type whenSection struct {
	cond  func() bool
	inner Section
}

func (s whenSection) Render(ctx RenderContext) RenderedSection {
	if s.cond == nil || !s.cond() {
		return RenderedSection{}
	}
	return s.inner.Render(ctx)
}

func (s whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.cond == nil || !s.cond() {
		return "", nil
	}
	return s.inner.Update(msg, focusID)
}

// Custom returns a section rendered by the caller's own function. update
// may be nil for display-only content.
func Custom(render func(ctx RenderContext) RenderedSection, update func(msg tea.Msg, focusID string) (string, tea.Cmd)) Section {
	return customSection{render: render, update: update}
}

type customSection struct {
	render func(ctx RenderContext) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

func (s customSection) Render(ctx RenderContext) RenderedSection {
	if s.render == nil {
		return RenderedSection{}
	}
	return s.render(ctx)
}

func (s customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

// joinSections stacks rendered sections, skipping empty ones, and rebases
// each section's focusables to body-relative line offsets.
func joinSections(rendered []RenderedSection) (string, []FocusableInfo) {
	var (
		parts      []string
		focusables []FocusableInfo
		offsetY    int
	)
	for _, r := range rendered {
		if r.Content == "" {
			continue
		}
		h := measureHeight(r.Content)
		for _, f := range r.Focusables {
			f.OffsetY += offsetY
			focusables = append(focusables, f)
		}
		parts = append(parts, r.Content)
		offsetY += h
	}
	return strings.Join(parts, "\n"), focusables
}

// measureHeight returns the number of rendered lines in a block. An empty
// block is zero lines; a trailing newline does not add a line.
func measureHeight(content string) int {
	if content == "" {
		return 0
	}
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}
