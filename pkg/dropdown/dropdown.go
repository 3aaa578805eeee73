package dropdown

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"

	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/mouse"
	"github.com/marcus/selectme/pkg/dropdown/placement"
	"github.com/marcus/selectme/pkg/dropdown/record"
	"github.com/marcus/selectme/pkg/dropdown/virtual"
)

// Dropdown is one select widget. It is not safe for concurrent use; drive it
// from a single Bubble Tea update loop.
type Dropdown struct {
	ID string

	cfg    Config
	access record.Access
	sub    *event.Subscription

	opened     bool
	skip       bool
	lastSearch string
	focused    bool
	highlight  int

	search textinput.Model
	vp     viewport.Model
	vlist  virtual.List
	mouse  *mouse.Handler

	bounds    placement.Rect
	hasBounds bool
	screenW   int
	screenH   int

	// Layout of the last render, in view-local cells.
	props       placement.ListProps
	controlLeft int
	controlTop  int
	listTop     int
}

// New builds a dropdown. It does not listen for document clicks until
// Mount is called.
func New(cfg Config) *Dropdown {
	cfg = cfg.withDefaults()

	d := &Dropdown{
		ID:     cfg.ID,
		cfg:    cfg,
		access: record.For(cfg.Immutable),
		mouse:  mouse.NewHandler(),
		vp:     viewport.New(cfg.Width, 0),
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if cfg.IsOpened != nil {
		d.opened = *cfg.IsOpened
	}

	d.search = textinput.New()
	d.search.Prompt = ""
	d.search.Placeholder = cfg.Placeholder
	d.search.Width = cfg.Width

	if cfg.Multiple && cfg.Value != nil {
		if _, ok := record.SeqOf(cfg.Value); !ok {
			cfg.Logger.Warn("invalid value for multi-select dropdown, expected a sequence",
				"id", d.ID, "value", cfg.Value)
		}
	}
	return d
}

// Mount subscribes to the document click stream. Calling it again while
// mounted does nothing.
func (d *Dropdown) Mount() {
	if d.sub != nil {
		return
	}
	d.sub = d.cfg.Document.Subscribe(d.RequestGlobalClose)
}

// Unmount removes the document subscription. It is safe to call repeatedly.
func (d *Dropdown) Unmount() {
	d.sub.Unsubscribe()
	d.sub = nil
}

// Mounted reports whether the widget is listening for document clicks.
func (d *Dropdown) Mounted() bool { return d.sub != nil }

// SetOptions replaces the option collection.
func (d *Dropdown) SetOptions(options any) {
	d.cfg.Options = options
	d.highlight = clampIndex(d.highlight, record.Len(d.options()))
}

// Options returns the normalized option collection.
func (d *Dropdown) Options() record.Seq { return d.options() }

// SetValue replaces the current value.
func (d *Dropdown) SetValue(v any) { d.cfg.Value = v }

// Value returns the current value.
func (d *Dropdown) Value() any { return d.cfg.Value }

// Config returns the effective configuration.
func (d *Dropdown) Config() Config { return d.cfg }

// SetBounds tells the widget where its control row sits on screen. Until it
// is called the widget renders as headless.
func (d *Dropdown) SetBounds(r placement.Rect) {
	d.bounds = r
	d.hasBounds = true
}

// Bounds returns the control rectangle last set with SetBounds.
func (d *Dropdown) Bounds() placement.Rect { return d.bounds }

// SetScreenSize records the terminal size used as the default bounding area.
func (d *Dropdown) SetScreenSize(w, h int) {
	d.screenW, d.screenH = w, h
}

// Headless reports whether placement has no geometry to work with.
func (d *Dropdown) Headless() bool {
	return d.cfg.Headless || !d.hasBounds || d.screenH <= 0
}

// ViewOrigin returns the screen cell where the top-left corner of View must
// be drawn so that the control lands on its bounds.
func (d *Dropdown) ViewOrigin() (x, y int) {
	return d.bounds.X - d.controlLeft, d.bounds.Y - d.controlTop
}

// Highlighted returns the index of the keyboard-highlighted option.
func (d *Dropdown) Highlighted() int { return d.highlight }

// SearchValue returns the current search text.
func (d *Dropdown) SearchValue() string { return d.search.Value() }

// ListProps computes direction and height for the list from fresh geometry.
func (d *Dropdown) ListProps() placement.ListProps {
	opts := d.options()
	var wrapper *placement.Rect
	if d.cfg.GetWrapper != nil {
		wrapper = d.cfg.GetWrapper()
	}
	return placement.Compute(placement.Input{
		Control:        d.bounds,
		Wrapper:        wrapper,
		ViewportHeight: d.screenH,
		Headless:       d.Headless(),
		OptionCount:    record.Len(opts),
		OptionHeight:   func(i int) int { return d.optionHeight(opts, i) },
		ListHeight:     d.cfg.ListHeight,
		ListMaxHeight:  d.cfg.ListMaxHeight,
		BoundaryMargin: d.cfg.BoundaryMargin,
		Position:       d.cfg.ListPosition,
	})
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// LastPlacement returns the placement used by the most recent render of the
// open list.
func (d *Dropdown) LastPlacement() placement.ListProps { return d.props }
