package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/mouse"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

// Hit region IDs registered by View.
const (
	regionControl = "control"
	regionRemove  = "remove"
	regionSearch  = "search"
	regionOption  = "option"
)

// Update handles window, key and mouse messages. Key messages are only
// handled while the widget is focused. Mouse presses are handled as the
// target of the click; the host dispatches the same press to the document
// afterwards.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetScreenSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		return d.HandleKey(msg)
	case tea.MouseMsg:
		d.HandleMouse(msg)
		return nil
	}
	return nil
}

// HandleKey applies a key press to the focused widget.
func (d *Dropdown) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if d.cfg.Disabled {
		return nil
	}
	keys := d.cfg.Keys
	ev := event.Key(msg.String())

	if !d.opened {
		if key.Matches(msg, keys.Open) {
			d.Toggle(ev)
			return nil
		}
		if d.cfg.Searchable {
			return d.updateSearch(msg)
		}
		return nil
	}

	opts := d.options()
	switch {
	case key.Matches(msg, keys.Close):
		d.Toggle(ev)
	case key.Matches(msg, keys.Leave):
		if d.cfg.Searchable {
			d.Toggle(ev)
		}
	case key.Matches(msg, keys.Up):
		d.moveHighlight(d.highlight-1, record.Len(opts))
	case key.Matches(msg, keys.Down):
		d.moveHighlight(d.highlight+1, record.Len(opts))
	case key.Matches(msg, keys.Home):
		d.moveHighlight(0, record.Len(opts))
	case key.Matches(msg, keys.End):
		d.moveHighlight(record.Len(opts)-1, record.Len(opts))
	case key.Matches(msg, keys.Select):
		if d.highlight < record.Len(opts) {
			d.ApplyChange(opts.At(d.highlight))
			// Same path as a click: the document close follows the change.
			d.RequestGlobalClose(ev)
		}
	case d.cfg.Multiple && !d.cfg.Searchable && key.Matches(msg, keys.Toggle):
		if d.highlight < record.Len(opts) {
			d.ApplyChange(opts.At(d.highlight))
			d.skip = false
		}
	default:
		if d.cfg.Searchable {
			return d.updateSearch(msg)
		}
	}
	return nil
}

func (d *Dropdown) moveHighlight(i, n int) {
	d.highlight = clampIndex(i, n)
	d.vlist.ScrollTo(d.highlight)
	d.scrollViewportTo(d.highlight)
}

// HandleMouse applies a mouse event at screen coordinates. Presses outside
// the widget are ignored here; they reach it through the document.
func (d *Dropdown) HandleMouse(msg tea.MouseMsg) {
	ox, oy := d.ViewOrigin()
	local := msg
	local.X -= ox
	local.Y -= oy

	action := d.mouse.HandleMouse(local)
	if action.Region == nil {
		return
	}

	switch action.Type {
	case mouse.ActionHover:
		if action.Region.ID == regionOption {
			d.highlight = action.Region.Data.(int)
		}
	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		d.scrollList(action.Type == mouse.ActionScrollDown)
	case mouse.ActionClick:
		d.click(action.Region, event.Click(msg.X, msg.Y))
	}
}

// Hit reports whether the screen cell x, y lands on the widget as it was last
// rendered. Hosts use it to route a press to the topmost widget only.
func (d *Dropdown) Hit(x, y int) bool {
	ox, oy := d.ViewOrigin()
	return d.mouse.HitMap.Test(x-ox, y-oy) != nil
}

// click mirrors how a browser click bubbles: the innermost target runs
// first, then the control's toggle if the target sits inside the control.
func (d *Dropdown) click(r *mouse.Region, ev event.Event) {
	switch r.ID {
	case regionOption:
		opts := d.options()
		if i := r.Data.(int); i < record.Len(opts) {
			d.highlight = i
			d.ApplyChange(opts.At(i))
		}
		return
	case regionRemove:
		sel := d.SelectedOptions()
		if i := r.Data.(int); i < record.Len(sel) && sel.At(i) != nil {
			d.RemoveSelected(sel.At(i))
		}
	case regionSearch:
		if !d.focused {
			d.focused = true
			if !d.opened {
				d.Toggle(event.Event{Kind: event.KindFocus})
			}
		}
		if d.opened {
			d.MarkSkipPropagation()
		}
	}

	d.focused = true
	if !d.cfg.Disabled {
		d.Toggle(ev)
	}
}

func (d *Dropdown) scrollList(down bool) {
	delta := -1
	if down {
		delta = 1
	}
	if d.cfg.Virtualized {
		d.vlist.Scroll(delta)
		return
	}
	d.vp.SetYOffset(d.vp.YOffset + delta)
}

func (d *Dropdown) scrollViewportTo(i int) {
	opts := d.options()
	top := 0
	for j := 0; j < i && j < record.Len(opts); j++ {
		top += d.optionHeight(opts, j)
	}
	bottom := top + d.optionHeight(opts, i)
	switch {
	case top < d.vp.YOffset:
		d.vp.SetYOffset(top)
	case bottom > d.vp.YOffset+d.vp.Height:
		d.vp.SetYOffset(bottom - d.vp.Height)
	}
}

func (d *Dropdown) updateSearch(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)

	q := d.search.Value()
	if d.cfg.Hooks.OnSearch != nil && q != d.lastSearch {
		d.cfg.Hooks.OnSearch(q)
	}
	d.lastSearch = q
	d.highlight = clampIndex(d.highlight, record.Len(d.options()))
	return cmd
}
