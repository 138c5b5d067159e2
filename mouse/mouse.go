package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollStep is the number of lines a single wheel notch scrolls.
const scrollStep = 3

// doubleClickWindow is the longest gap between two clicks on the same
// region that still counts as a double click.
const doubleClickWindow = 400 * time.Millisecond

// Rect is a rectangle in screen cells. The right and bottom edges are
// exclusive; a zero-size rect contains nothing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) falls inside the rect.
func (r Rect) Contains(x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangular hit area with optional attached data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap tracks the interactive regions registered during a render pass.
// Regions are tested newest-first so that overlays win over what they cover.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add registers a region. Later additions take priority on overlap.
func (m *HitMap) Add(id string, r Rect, data any) {
	m.regions = append(m.regions, Region{ID: id, Rect: r, Data: data})
}

// AddRect registers a region from raw coordinates.
func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.Add(id, Rect{X: x, Y: y, W: w, H: h}, data)
}

// Test returns the topmost region containing (x, y), or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

// Clear removes all regions. Call at the start of each render pass.
func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

// Regions returns a copy of the registered regions.
func (m *HitMap) Regions() []Region {
	out := make([]Region, len(m.regions))
	copy(out, m.regions)
	return out
}

// ActionType classifies what a mouse message means for the UI.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionDoubleClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
)

// Action is the interpreted result of a mouse message.
type Action struct {
	Type   ActionType
	Region *Region // region under the cursor, nil on a miss
	Delta  int     // scroll amount in lines, negative is up
	DragDX int
	DragDY int
}

// ClickResult reports a resolved click.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// Handler interprets raw mouse messages against a hit map and tracks
// click and drag state across messages.
type Handler struct {
	HitMap *HitMap

	lastClickID   string
	lastClickTime time.Time

	dragging       bool
	dragRegion     string
	dragStartX     int
	dragStartY     int
	dragStartValue int
}

// NewHandler returns a Handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick resolves a press at (x, y) against the hit map and applies
// double-click detection. A second click on the same region within the
// window reports a double click and resets the tracking state.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	if region == nil {
		h.lastClickID = ""
		return ClickResult{}
	}

	now := time.Now()
	double := h.lastClickID == region.ID && now.Sub(h.lastClickTime) <= doubleClickWindow
	if double {
		h.lastClickID = ""
	} else {
		h.lastClickID = region.ID
		h.lastClickTime = now
	}
	return ClickResult{Region: region, IsDoubleClick: double}
}

// StartDrag begins tracking a drag anchored at (x, y). startValue carries
// whatever quantity the drag adjusts (a divider position, a scroll offset)
// so the owner can apply deltas against it.
func (h *Handler) StartDrag(x, y int, region string, startValue int) {
	h.dragging = true
	h.dragRegion = region
	h.dragStartX = x
	h.dragStartY = y
	h.dragStartValue = startValue
}

// IsDragging reports whether a drag is in progress.
func (h *Handler) IsDragging() bool {
	return h.dragging
}

// DragRegion returns the region ID passed to StartDrag, or "" when idle.
func (h *Handler) DragRegion() string {
	return h.dragRegion
}

// DragStartValue returns the value captured at StartDrag.
func (h *Handler) DragStartValue() int {
	return h.dragStartValue
}

// DragDelta returns the cursor movement since StartDrag.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag stops tracking the current drag.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
	h.dragStartValue = 0
}

// Clear drops all registered regions. Drag state survives a clear because
// regions are re-registered every frame while a drag can span frames.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// AddRect registers a hit region for the current frame.
func (h *Handler) AddRect(id string, x, y, w, hgt int, data any) {
	h.HitMap.AddRect(id, x, y, w, hgt, data)
}

// Regions returns a copy of the registered regions.
func (h *Handler) Regions() []Region {
	return h.HitMap.Regions()
}

// HandleMouse interprets a raw mouse message. Wheel events become scroll
// actions (shift flips them horizontal; native horizontal wheels follow Mac
// natural direction), presses become clicks, motion becomes hover or drag.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				return Action{Type: ActionScrollLeft, Region: h.HitMap.Test(msg.X, msg.Y), Delta: -scrollStep}
			}
			return Action{Type: ActionScrollUp, Region: h.HitMap.Test(msg.X, msg.Y), Delta: -scrollStep}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				return Action{Type: ActionScrollRight, Region: h.HitMap.Test(msg.X, msg.Y), Delta: scrollStep}
			}
			return Action{Type: ActionScrollDown, Region: h.HitMap.Test(msg.X, msg.Y), Delta: scrollStep}
		case tea.MouseButtonWheelLeft:
			return Action{Type: ActionScrollRight, Region: h.HitMap.Test(msg.X, msg.Y), Delta: scrollStep}
		case tea.MouseButtonWheelRight:
			return Action{Type: ActionScrollLeft, Region: h.HitMap.Test(msg.X, msg.Y), Delta: -scrollStep}
		case tea.MouseButtonLeft:
			result := h.HandleClick(msg.X, msg.Y)
			if result.Region == nil {
				return Action{Type: ActionNone}
			}
			if result.IsDoubleClick {
				return Action{Type: ActionDoubleClick, Region: result.Region}
			}
			return Action{Type: ActionClick, Region: result.Region}
		}
		return Action{Type: ActionNone}

	case tea.MouseActionMotion:
		if h.dragging {
			dx, dy := h.DragDelta(msg.X, msg.Y)
			return Action{Type: ActionDrag, DragDX: dx, DragDY: dy}
		}
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y)}

	case tea.MouseActionRelease:
		if h.dragging {
			h.EndDrag()
			return Action{Type: ActionDragEnd}
		}
		return Action{Type: ActionNone}
	}

	return Action{Type: ActionNone}
}
