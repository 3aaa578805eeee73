package dropdown

import "github.com/marcus/selectme/pkg/dropdown/event"

// IsOpen reports whether the option list is shown.
func (d *Dropdown) IsOpen() bool { return d.opened }

// Controlled reports whether the open state is forced from outside.
func (d *Dropdown) Controlled() bool { return d.cfg.IsOpened != nil }

// SetOpened changes the controlled open state. A non-nil value different
// from the current state is applied directly, without hooks. Nil returns the
// widget to uncontrolled mode.
func (d *Dropdown) SetOpened(opened *bool) {
	d.cfg.IsOpened = opened
	if opened != nil && *opened != d.opened {
		d.setOpen(*opened)
	}
}

// MarkSkipPropagation arms the one-shot guard consumed by the next
// RequestGlobalClose. It belongs to this instance only.
func (d *Dropdown) MarkSkipPropagation() { d.skip = true }

// SkipArmed reports whether the skip guard is set.
func (d *Dropdown) SkipArmed() bool { return d.skip }

// Toggle flips the open state, or moves to the controlled state when one is
// set. The transition runs only if the state actually changes and the guard
// hook does not veto it; the completion hook runs after the change. A click
// that commits a toggle arms the skip guard so it does not reach this
// widget's own global-close handler, and clicks are ignored while the guard
// is armed. Other triggers never touch the guard. It reports whether the
// state changed.
func (d *Dropdown) Toggle(ev event.Event) bool {
	click := ev.Kind == event.KindClick
	if click && d.skip {
		return false
	}

	next := !d.opened
	if d.cfg.IsOpened != nil {
		next = *d.cfg.IsOpened
	}
	if next == d.opened {
		return false
	}

	guard := d.cfg.Hooks.beforeClose
	if next {
		guard = d.cfg.Hooks.beforeOpen
	}
	if guard(ev) == Veto {
		d.cfg.Logger.Debug("dropdown toggle vetoed", "id", d.ID, "open", next, "trigger", ev.Kind)
		return false
	}

	if click {
		d.MarkSkipPropagation()
	}
	d.setOpen(next)
	if next {
		d.cfg.Hooks.onOpen()
	} else {
		d.cfg.Hooks.onClose()
	}
	return true
}

// RequestGlobalClose handles a click that landed anywhere on screen. An armed
// skip guard is consumed and nothing else happens. Closed and controlled
// widgets stay as they are. Otherwise the list closes unless BeforeClose
// vetoes it.
func (d *Dropdown) RequestGlobalClose(ev event.Event) {
	if d.skip || !d.opened {
		d.skip = false
		return
	}
	if d.Controlled() {
		return
	}
	if d.cfg.Hooks.beforeClose(ev) == Veto {
		return
	}
	d.setOpen(false)
	d.cfg.Hooks.onClose()
}

func (d *Dropdown) setOpen(open bool) {
	d.opened = open
	d.cfg.Logger.Debug("dropdown state", "id", d.ID, "open", open)

	if open {
		d.highlight = d.firstSelectedIndex()
		d.vp.SetYOffset(0)
		d.vlist.Offset = 0
	}
	if d.cfg.Searchable {
		if open {
			d.search.Focus()
		} else {
			d.search.Blur()
		}
	}
}

// Focus gives the widget keyboard focus. A searchable widget opens on focus,
// as a focused search box implies the list is wanted.
func (d *Dropdown) Focus() {
	if d.focused {
		return
	}
	d.focused = true
	if d.cfg.Searchable && !d.opened && !d.cfg.Disabled {
		d.Toggle(event.Event{Kind: event.KindFocus})
	}
}

// Blur removes keyboard focus.
func (d *Dropdown) Blur() {
	d.focused = false
	d.search.Blur()
}

// Focused reports whether the widget has keyboard focus.
func (d *Dropdown) Focused() bool { return d.focused }

func (d *Dropdown) firstSelectedIndex() int {
	opts := d.options()
	sel := d.SelectedOptions()
	for i := 0; i < sel.Len(); i++ {
		if v := sel.At(i); v != nil {
			if idx := indexOf(opts, d.key(v), d.cfg.ValueKey, d.access); idx >= 0 {
				return idx
			}
		}
	}
	return 0
}
