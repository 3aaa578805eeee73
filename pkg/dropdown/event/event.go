// Package event carries user interactions to dropdowns and owns the
// document-wide click stream every mounted dropdown listens on.
package event

import "fmt"

// Kind identifies what produced an Event.
type Kind int

const (
	KindProgram Kind = iota // programmatic call, no user input
	KindClick
	KindFocus
	KindKey
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindClick:
		return "click"
	case KindFocus:
		return "focus"
	case KindKey:
		return "key"
	case KindInput:
		return "input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is the trigger handed to the BeforeOpen and BeforeClose guards.
type Event struct {
	Kind Kind
	X, Y int    // screen cell for clicks
	Key  string // key name for key events
}

// Click returns a click event at x, y.
func Click(x, y int) Event {
	return Event{Kind: KindClick, X: x, Y: y}
}

// Key returns a key event.
func Key(name string) Event {
	return Event{Kind: KindKey, Key: name}
}

// Program is the trigger used for calls not driven by input.
var Program = Event{Kind: KindProgram}
