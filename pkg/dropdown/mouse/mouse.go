// Package mouse maps terminal mouse events onto named screen regions.
//
// Regions are registered while rendering (render-then-measure) and tested when
// the next mouse event arrives, so hit targets always match what is on screen.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a hit rectangle. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x, y lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit target with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the top-most region containing x, y, or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions.
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear drops every region.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

// Action is the interpreted form of a tea.MouseMsg.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler interprets mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse interprets msg. Coordinates are used as given; callers translate
// screen coordinates into the hit map's space first.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.Type = ActionScrollUp
		case tea.MouseButtonWheelDown:
			a.Type = ActionScrollDown
		case tea.MouseButtonLeft:
			a.Type = ActionClick
		default:
			return a
		}
	case tea.MouseActionMotion:
		a.Type = ActionHover
	default:
		return a
	}

	a.Region = h.HitMap.Test(msg.X, msg.Y)
	return a
}

// Clear drops every registered region.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
