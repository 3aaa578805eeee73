package dropdown

import (
	"log/slog"

	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/placement"
)

// Config is the widget's full configuration surface. Options and Value are
// owned by the caller and can be replaced at any time with SetOptions and
// SetValue; everything else is read at construction.
type Config struct {
	// ID names the instance; a random one is assigned when empty.
	ID string

	// Options is the option collection: a record.Seq, a slice of records, or
	// a slice of strings/numbers.
	Options any
	// Value is a key or record, or a sequence of them when Multiple is set.
	Value any

	Multiple    bool
	Searchable  bool
	Disabled    bool
	Immutable   bool
	Virtualized bool
	Error       bool
	Headless    bool

	ListPosition     placement.Position
	ListHeight       int
	ListMaxHeight    int
	OptionHeight     int
	OptionHeightFunc func(option any) int
	// BoundaryMargin is kept free between the list and the edge of its
	// bounding area. Zero selects the default; use NoMargin for none.
	BoundaryMargin int

	LabelKey    string
	ValueKey    string
	Placeholder string
	// Width is the control width in cells.
	Width int

	// IsOpened, when non-nil, controls the open state from outside.
	IsOpened *bool

	Hooks     Hooks
	Renderers Renderers
	// GetWrapper returns the bounding area used for placement; nil or a nil
	// result measures against the terminal.
	GetWrapper func() *placement.Rect
	Styles     *Styles
	Keys       *KeyMap
	Logger     *slog.Logger
	// Document is the click stream the widget listens on; event.Default
	// when nil.
	Document *event.Document
}

// NoMargin disables the boundary margin.
const NoMargin = -1

const (
	defaultLabelKey    = "label"
	defaultValueKey    = "value"
	defaultPlaceholder = "Select ..."
	defaultWidth       = 30
)

func (c Config) withDefaults() Config {
	if c.ListPosition == "" {
		c.ListPosition = placement.Auto
	}
	if c.ListMaxHeight <= 0 {
		c.ListMaxHeight = placement.DefaultListMaxHeight
	}
	if c.OptionHeight <= 0 {
		c.OptionHeight = placement.DefaultOptionHeight
	}
	switch {
	case c.BoundaryMargin == 0:
		c.BoundaryMargin = placement.DefaultBoundaryMargin
	case c.BoundaryMargin < 0:
		c.BoundaryMargin = 0
	}
	if c.LabelKey == "" {
		c.LabelKey = defaultLabelKey
	}
	if c.ValueKey == "" {
		c.ValueKey = defaultValueKey
	}
	if c.Placeholder == "" {
		c.Placeholder = defaultPlaceholder
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Styles == nil {
		s := DefaultStyles()
		c.Styles = &s
	}
	if c.Keys == nil {
		k := DefaultKeyMap()
		c.Keys = &k
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Document == nil {
		c.Document = event.Default
	}
	return c
}
