package dropdown

import (
	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

// Verdict is what a guard or change hook returns. Only Veto stops anything;
// the zero value means the hook had nothing to say.
type Verdict int

const (
	Proceed Verdict = iota
	Allow
	Veto
)

// Hooks are caller callbacks. Every field is optional; a nil guard never
// vetoes and a nil notifier does nothing.
type Hooks struct {
	BeforeOpen  func(ev event.Event) Verdict
	BeforeClose func(ev event.Event) Verdict
	OnOpen      func()
	OnClose     func()
	// OnChange receives the next value. Returning Veto keeps the list open
	// after a click-driven change; the change itself is not undone.
	OnChange func(value any) Verdict
	// OnSearch receives the search text whenever it changes.
	OnSearch func(query string)
}

func (h Hooks) beforeOpen(ev event.Event) Verdict {
	if h.BeforeOpen == nil {
		return Allow
	}
	return h.BeforeOpen(ev)
}

func (h Hooks) beforeClose(ev event.Event) Verdict {
	if h.BeforeClose == nil {
		return Allow
	}
	return h.BeforeClose(ev)
}

func (h Hooks) onOpen() {
	if h.OnOpen != nil {
		h.OnOpen()
	}
}

func (h Hooks) onClose() {
	if h.OnClose != nil {
		h.OnClose()
	}
}

func (h Hooks) onChange(v any) Verdict {
	if h.OnChange == nil {
		return Proceed
	}
	return h.OnChange(v)
}

// Renderers replace parts of the built-in view. Each receives normalized data;
// nil fields fall back to the default rendering.
type Renderers struct {
	// Option draws one list row.
	Option func(option any, selected record.Seq, highlighted bool) string
	// SelectedValue draws one selected option inside the control.
	SelectedValue func(option any) string
	// SelectedBlock draws the whole selection area of the control.
	SelectedBlock func(selected record.Seq, value func(option any) string, search func() string) string
	// SearchInput draws the search box.
	SearchInput func(selected record.Seq) string
	// Icon draws the expand indicator.
	Icon func(opened bool) string
	// List draws the whole option list, replacing placement and scrolling.
	List func(options, selected record.Seq, option func(option any) string) string
}
