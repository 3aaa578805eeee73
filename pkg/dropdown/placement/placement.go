// Package placement decides where a dropdown list opens and how tall it may
// grow, from the control's position inside its bounding area.
//
// All values are terminal cells. Geometry is measured fresh each time the list
// opens; nothing here keeps state between calls.
package placement

// Position is the list direction policy.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Auto   Position = "auto"
)

// DefaultPosition is used whenever geometry is unavailable.
const DefaultPosition = Bottom

// Defaults in terminal rows.
const (
	DefaultListMaxHeight  = 10
	DefaultOptionHeight   = 1
	DefaultBoundaryMargin = 1
)

// ParsePosition maps a config string to a Position; unknown values are Auto.
func ParsePosition(s string) Position {
	switch Position(s) {
	case Top, Bottom:
		return Position(s)
	}
	return Auto
}

// Rect is a screen rectangle. W and H are exclusive extents.
type Rect struct {
	X, Y, W, H int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Offsets is the room above and below the control.
type Offsets struct {
	Top    int
	Bottom int
}

// Measure returns the distance from the control to the top and bottom of the
// wrapper, or of the viewport when wrapper is nil. Headless renders have no
// layout and always measure {0, 0}.
func Measure(control Rect, wrapper *Rect, viewportHeight int, headless bool) Offsets {
	if headless {
		return Offsets{}
	}
	if wrapper != nil {
		return Offsets{
			Top:    control.Y - wrapper.Y,
			Bottom: wrapper.Bottom() - control.Bottom(),
		}
	}
	return Offsets{
		Top:    control.Y,
		Bottom: viewportHeight - control.Bottom(),
	}
}

// EstimateListHeight returns the natural list height before it is clamped to
// the available space. A positive fixed height wins outright. Otherwise option
// heights are summed until every option is counted or the total reaches
// maxHeight; the result never exceeds maxHeight.
func EstimateListHeight(count int, heightOf func(i int) int, maxHeight, fixed int) int {
	if fixed > 0 {
		return fixed
	}
	total := 0
	for i := 0; i < count; i++ {
		if total >= maxHeight {
			break
		}
		total += heightOf(i)
	}
	return min(total, maxHeight)
}

// ChooseDirection resolves the configured position. Auto opens upward only
// when the list does not fit below and there is more room above than below.
func ChooseDirection(top, bottom, estimated, margin int, configured Position) Position {
	if configured == Top || configured == Bottom {
		return configured
	}
	if bottom < estimated+margin && top > bottom {
		return Top
	}
	return Bottom
}

// FinalHeight clamps the estimated height to the room left in direction,
// minus the boundary margin. A positive fixed height is returned verbatim.
// The result may be negative when the margin exceeds the room; renderers
// clamp at zero.
func FinalHeight(direction Position, top, bottom, margin, estimated, fixed int) int {
	if fixed > 0 {
		return fixed
	}
	avail := bottom
	if direction == Top {
		avail = top
	}
	return min(estimated, avail-margin)
}
