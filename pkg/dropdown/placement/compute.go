package placement

// Input is everything Compute needs for one open.
type Input struct {
	Control        Rect
	Wrapper        *Rect
	ViewportHeight int
	Headless       bool

	OptionCount    int
	OptionHeight   func(i int) int
	ListHeight     int
	ListMaxHeight  int
	BoundaryMargin int
	Position       Position
}

// ListProps is the outcome of a placement pass.
type ListProps struct {
	Direction Position
	Height    int
	Offsets   Offsets
}

// Compute runs measure, estimate, direction and height in order. Headless
// renders skip geometry and fall back to DefaultPosition with the fixed
// height, or the max height when none is fixed.
func Compute(in Input) ListProps {
	if in.Headless {
		h := in.ListHeight
		if h <= 0 {
			h = in.ListMaxHeight
		}
		return ListProps{Direction: DefaultPosition, Height: h}
	}

	heightOf := in.OptionHeight
	if heightOf == nil {
		heightOf = func(int) int { return DefaultOptionHeight }
	}

	off := Measure(in.Control, in.Wrapper, in.ViewportHeight, false)
	est := EstimateListHeight(in.OptionCount, heightOf, in.ListMaxHeight, in.ListHeight)
	dir := ChooseDirection(off.Top, off.Bottom, est, in.BoundaryMargin, in.Position)
	h := FinalHeight(dir, off.Top, off.Bottom, in.BoundaryMargin, est, in.ListHeight)

	return ListProps{Direction: dir, Height: h, Offsets: off}
}
