package dropdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/selectme/pkg/dropdown/mouse"
	"github.com/marcus/selectme/pkg/dropdown/placement"
	"github.com/marcus/selectme/pkg/dropdown/record"
	"github.com/marcus/selectme/pkg/dropdown/virtual"
)

const (
	iconClosed = "▾"
	iconOpened = "▴"
	crossIcon  = "×"
)

// View renders the control and, when open, the option list on the side
// placement chose. Hit regions for the next mouse event are rebuilt on every
// call. Draw the result at ViewOrigin.
func (d *Dropdown) View() string {
	d.mouse.Clear()
	s := d.cfg.Styles

	var regions []mouse.Region
	control, controlRegions := d.renderControl()
	regions = append(regions, controlRegions...)

	list, listRegions, dir := "", []mouse.Region(nil), placement.DefaultPosition
	if d.opened {
		list, listRegions, dir = d.renderList(control)
	}

	wrapper := s.Wrapper
	wrapper = layer(wrapper, s.Multi, d.cfg.Multiple)
	wrapper = layer(wrapper, s.Single, !d.cfg.Multiple)
	wrapper = layer(wrapper, s.Opened, d.opened)
	wrapper = layer(wrapper, s.Error, d.cfg.Error)
	wrapper = layer(wrapper, s.Disabled, d.cfg.Disabled)
	wx, wy := frameLeft(wrapper), frameTop(wrapper)

	body := control
	d.controlTop, d.listTop = wy, wy+lipgloss.Height(control)
	if list != "" {
		if dir == placement.Top {
			body = lipgloss.JoinVertical(lipgloss.Left, list, control)
			d.listTop, d.controlTop = wy, wy+lipgloss.Height(list)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, control, list)
		}
	}
	d.controlLeft = wx

	for _, r := range regions {
		d.mouse.HitMap.AddRect(r.ID, r.Rect.X+wx, r.Rect.Y+d.controlTop, r.Rect.W, r.Rect.H, r.Data)
	}
	for _, r := range listRegions {
		d.mouse.HitMap.AddRect(r.ID, r.Rect.X+wx, r.Rect.Y+d.listTop, r.Rect.W, r.Rect.H, r.Data)
	}

	return wrapper.Render(body)
}

// renderControl draws the control row. Regions are relative to its top-left.
func (d *Dropdown) renderControl() (string, []mouse.Region) {
	s := d.cfg.Styles
	selected := d.SelectedOptions()
	ctl := s.SelectControl
	contentW := max(1, d.cfg.Width-ctl.GetHorizontalFrameSize())

	icon := d.renderIcon()
	iconW := lipgloss.Width(icon)
	blockW := max(0, contentW-iconW-1)

	block, inner := d.renderSelectedBlock(selected, blockW)
	if lipgloss.Width(block) > blockW {
		block = ansi.Truncate(block, blockW, "…")
	}
	pad := strings.Repeat(" ", max(0, contentW-lipgloss.Width(block)-iconW))
	out := ctl.Render(block + pad + icon)

	w, h := lipgloss.Width(out), lipgloss.Height(out)
	regions := []mouse.Region{{ID: regionControl, Rect: mouse.Rect{W: w, H: h}}}
	left, top := frameLeft(ctl), frameTop(ctl)
	for _, r := range inner {
		if r.Rect.X >= blockW {
			continue
		}
		r.Rect.W = min(r.Rect.W, blockW-r.Rect.X)
		r.Rect.X += left
		r.Rect.Y += top
		regions = append(regions, r)
	}
	return out, regions
}

// renderSelectedBlock lays out chips, placeholder and search input from left
// to right, returning the regions of clickable parts relative to the block.
func (d *Dropdown) renderSelectedBlock(selected record.Seq, width int) (string, []mouse.Region) {
	s := d.cfg.Styles
	valueFn := d.renderSelectedValue
	if d.cfg.Renderers.SelectedValue != nil {
		valueFn = d.cfg.Renderers.SelectedValue
	}

	if d.cfg.Renderers.SelectedBlock != nil {
		searchFn := func() string { return d.renderSearch(selected, width) }
		return d.cfg.Renderers.SelectedBlock(selected, valueFn, searchFn), nil
	}

	var (
		sb      strings.Builder
		regions []mouse.Region
		x       int
	)
	write := func(part string) {
		sb.WriteString(part)
		x += lipgloss.Width(part)
	}

	hasSelected := countPresent(selected) > 0
	if hasSelected && (d.cfg.Multiple || !d.cfg.Searchable || !d.opened) {
		for i := 0; i < selected.Len(); i++ {
			opt := selected.At(i)
			if opt == nil {
				continue
			}
			if !d.cfg.Multiple {
				write(s.Selected.Render(valueFn(opt)))
				continue
			}
			item := s.SelectedItem
			label := valueFn(opt) + " "
			crossX := x + frameLeft(item) + lipgloss.Width(label)
			write(item.Render(label + s.CrossIcon.Render(crossIcon)))
			regions = append(regions, mouse.Region{
				ID:   regionRemove,
				Rect: mouse.Rect{X: crossX, Y: frameTop(item), W: lipgloss.Width(crossIcon), H: 1},
				Data: i,
			})
		}
	}

	if !hasSelected && !d.cfg.Searchable {
		write(s.Placeholder.Render(d.cfg.Placeholder))
	}

	if d.cfg.Searchable {
		start := x
		write(s.Search.Render(d.renderSearch(selected, max(1, width-x))))
		regions = append(regions, mouse.Region{
			ID:   regionSearch,
			Rect: mouse.Rect{X: start, W: max(1, width-start), H: 1},
		})
	}

	return sb.String(), regions
}

func (d *Dropdown) renderSelectedValue(option any) string {
	return fmt.Sprint(d.label(option))
}

func (d *Dropdown) renderSearch(selected record.Seq, width int) string {
	if d.cfg.Renderers.SearchInput != nil {
		return d.cfg.Renderers.SearchInput(selected)
	}
	if countPresent(selected) > 0 {
		d.search.Placeholder = ""
	} else {
		d.search.Placeholder = d.cfg.Placeholder
	}
	d.search.Width = max(1, width-1)
	return d.search.View()
}

func (d *Dropdown) renderIcon() string {
	if d.cfg.Renderers.Icon != nil {
		return d.cfg.Renderers.Icon(d.opened)
	}
	icon := iconClosed
	if d.opened {
		icon = iconOpened
	}
	return d.cfg.Styles.ExpandIcon.Render(icon)
}

// renderList draws the open list and returns its option regions relative to
// the list's top-left along with the direction it opens in.
func (d *Dropdown) renderList(control string) (string, []mouse.Region, placement.Position) {
	s := d.cfg.Styles
	opts := d.options()
	selected := d.SelectedOptions()

	if d.cfg.Renderers.List != nil {
		optionFn := func(option any) string {
			return d.renderOption(option, selected, false, d.cfg.Width)
		}
		return d.cfg.Renderers.List(opts, selected, optionFn), nil, placement.DefaultPosition
	}

	props := d.ListProps()
	d.props = props
	height := max(0, props.Height)

	listStyle := s.List
	listStyle = layer(listStyle, s.ListVirtualized, d.cfg.Virtualized)
	listStyle = layer(listStyle, s.OpenToTop, props.Direction == placement.Top)
	listStyle = layer(listStyle, s.OpenToBottom, props.Direction == placement.Bottom)

	width := virtual.AutoWidth(control, d.cfg.Width)
	inner := max(1, width-listStyle.GetHorizontalFrameSize())
	count := record.Len(opts)

	if height == 0 || count == 0 {
		return "", nil, props.Direction
	}

	row := func(i int) string {
		return d.renderOption(opts.At(i), selected, i == d.highlight, inner)
	}

	var (
		body    string
		regions []mouse.Region
	)
	left, top := frameLeft(listStyle), frameTop(listStyle)

	if d.cfg.Virtualized {
		d.vlist.Width = inner
		d.vlist.Height = height
		d.vlist.RowCount = count
		d.vlist.RowHeight = func(i int) int { return d.optionHeight(opts, i) }
		d.vlist.RowRenderer = row
		body = d.vlist.View()
		for line := 0; line < height; line++ {
			if i, ok := d.vlist.RowAt(line); ok {
				regions = append(regions, optionRegion(i, left, top+line, inner))
			}
		}
	} else {
		rows := make([]string, count)
		starts := make([]int, count)
		total := 0
		for i := range rows {
			h := d.optionHeight(opts, i)
			starts[i] = total
			total += h
			rows[i] = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(row(i))
		}
		height = min(height, total)
		d.vp.Width = inner
		d.vp.Height = height
		d.vp.SetContent(strings.Join(rows, "\n"))
		body = d.vp.View()

		i := 0
		for line := 0; line < height; line++ {
			abs := d.vp.YOffset + line
			for i+1 < count && starts[i+1] <= abs {
				i++
			}
			regions = append(regions, optionRegion(i, left, top+line, inner))
		}
	}

	return listStyle.Render(body), regions, props.Direction
}

func optionRegion(i, x, y, w int) mouse.Region {
	return mouse.Region{ID: regionOption, Rect: mouse.Rect{X: x, Y: y, W: w, H: 1}, Data: i}
}

func (d *Dropdown) renderOption(option any, selected record.Seq, highlighted bool, width int) string {
	if d.cfg.Renderers.Option != nil {
		return d.cfg.Renderers.Option(option, selected, highlighted)
	}
	s := d.cfg.Styles
	isSelected := indexOf(selected, d.key(option), d.cfg.ValueKey, d.access) >= 0

	st := layer(s.Option, s.OptionVirtualized, d.cfg.Virtualized)
	st = layer(st, s.SelectedOption, isSelected)
	st = layer(st, s.HighlightedOption, highlighted)

	label := fmt.Sprint(d.label(option))
	avail := max(1, width-st.GetHorizontalFrameSize())
	return st.Width(width - st.GetHorizontalMargins()).Render(ansi.Truncate(label, avail, "…"))
}

func countPresent(seq record.Seq) int {
	n := 0
	for i := 0; i < record.Len(seq); i++ {
		if seq.At(i) != nil {
			n++
		}
	}
	return n
}

func frameLeft(s lipgloss.Style) int {
	return s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
}

func frameTop(s lipgloss.Style) int {
	return s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
}
