// Package dropdown provides a select widget for Bubble Tea programs with
// single and multi selection, search, and list placement that opens upward
// or downward depending on the room around the control.
//
// # Quick Start
//
//	d := dropdown.New(dropdown.Config{
//	    Options:  []string{"Go", "Rust", "Zig"},
//	    Multiple: true,
//	    Hooks: dropdown.Hooks{
//	        OnChange: func(v any) dropdown.Verdict {
//	            d.SetValue(v)
//	            return dropdown.Proceed
//	        },
//	    },
//	})
//	d.Mount()
//	defer d.Unmount()
//
//	// In Update():
//	case tea.MouseMsg:
//	    d.HandleMouse(msg)                       // the widget under the pointer first
//	    event.Default.Dispatch(event.Click(msg.X, msg.Y)) // then every mounted widget
//
//	// In View():
//	d.SetBounds(placement.Rect{X: 2, Y: 5, W: 30, H: 1})
//	x, y := d.ViewOrigin()
//	content := d.View() // draw at x, y
//
// # Clicks and closing
//
// Each mounted dropdown listens on a Document. A click that opens, toggles,
// or removes a chip in one dropdown arms that dropdown's skip guard, so the
// document dispatch that follows closes every other open dropdown but not the
// one that was clicked. Guard hooks veto a transition only by returning Veto.
//
// # Data
//
// Options may be strings or numbers, which become {label, value} records, or
// records as record.Fields. With Config.Immutable every record and value the
// widget builds is persistent (record.Frozen, record.List).
package dropdown
