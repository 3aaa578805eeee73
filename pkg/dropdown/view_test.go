package dropdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/placement"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

func viewLines(d *Dropdown) []string {
	return strings.Split(ansi.Strip(d.View()), "\n")
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("opt-%03d", i)
	}
	return out
}

func TestViewClosedShowsPlaceholder(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions()})
	lines := viewLines(d)
	if len(lines) != 1 {
		t.Fatalf("closed view has %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "Select ...") {
		t.Errorf("placeholder missing: %q", lines[0])
	}
	if !strings.Contains(lines[0], iconClosed) {
		t.Errorf("closed icon missing: %q", lines[0])
	}
}

func TestViewShowsSingleSelection(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions(), Value: 2})
	line := viewLines(d)[0]
	if !strings.Contains(line, "B") || strings.Contains(line, "Select ...") {
		t.Errorf("control = %q, want selected label B", line)
	}
}

func TestViewHeadlessOpensDown(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions()})
	d.Toggle(event.Program)

	lines := viewLines(d)
	if len(lines) != 4 {
		t.Fatalf("open view has %d lines, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], iconOpened) {
		t.Errorf("first line is not the control: %q", lines[0])
	}
	for i, label := range []string{"A", "B", "C"} {
		if !strings.Contains(lines[i+1], label) {
			t.Errorf("line %d = %q, want %s", i+1, lines[i+1], label)
		}
	}
	if got := d.LastPlacement().Direction; got != placement.Bottom {
		t.Errorf("direction = %s, want bottom", got)
	}
}

func TestViewOpensUpNearScreenBottom(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions()})
	d.SetScreenSize(80, 24)
	d.SetBounds(placement.Rect{X: 4, Y: 22, W: 30, H: 1})
	d.Toggle(event.Program)

	lines := viewLines(d)
	if len(lines) != 4 {
		t.Fatalf("open view has %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[3], iconOpened) {
		t.Errorf("last line is not the control: %q", lines[3])
	}
	if !strings.Contains(lines[0], "A") {
		t.Errorf("first line = %q, want option A", lines[0])
	}

	props := d.LastPlacement()
	if props.Direction != placement.Top || props.Height != 3 {
		t.Errorf("placement = %+v, want top with height 3", props)
	}
	if x, y := d.ViewOrigin(); x != 4 || y != 19 {
		t.Errorf("origin = (%d, %d), want (4, 19)", x, y)
	}
}

func TestViewHeightClampedByRoom(t *testing.T) {
	d := newTestDropdown(t, Config{Options: numbered(20), ListPosition: placement.Bottom})
	d.SetScreenSize(80, 10)
	d.SetBounds(placement.Rect{Y: 4, W: 30, H: 1})
	d.Toggle(event.Program)
	d.View()

	// 5 rows below the control, less the boundary margin.
	if got := d.LastPlacement().Height; got != 4 {
		t.Errorf("height = %d, want 4", got)
	}
}

func TestViewMultiChips(t *testing.T) {
	d := newTestDropdown(t, Config{Options: abOptions(), Value: []int{1, 3}, Multiple: true})
	line := viewLines(d)[0]
	if !strings.Contains(line, "A "+crossIcon) || !strings.Contains(line, "C "+crossIcon) {
		t.Errorf("chips missing: %q", line)
	}
}

func TestViewNarrowControlTruncates(t *testing.T) {
	opts := []string{"an option label much longer than the control"}
	d := newTestDropdown(t, Config{Options: opts, Value: opts[0], Width: 12})
	line := viewLines(d)[0]
	if w := ansi.StringWidth(line); w != 12 {
		t.Errorf("control width = %d, want 12: %q", w, line)
	}
}

func TestViewVirtualizedRendersWindow(t *testing.T) {
	d := newTestDropdown(t, Config{Options: numbered(100), Virtualized: true, ListMaxHeight: 5})
	d.Toggle(event.Program)

	lines := viewLines(d)
	if len(lines) != 6 {
		t.Fatalf("view has %d lines, want 6", len(lines))
	}
	if !strings.Contains(lines[1], "opt-000") || !strings.Contains(lines[5], "opt-004") {
		t.Errorf("unexpected window:\n%s", strings.Join(lines, "\n"))
	}
}

func TestViewCustomRenderers(t *testing.T) {
	d := newTestDropdown(t, Config{
		Options: abOptions(),
		Value:   1,
		Renderers: Renderers{
			Option: func(option any, _ record.Seq, highlighted bool) string {
				mark := " "
				if highlighted {
					mark = ">"
				}
				return mark + record.Plain{}.Get(option, "label").(string)
			},
			SelectedValue: func(option any) string {
				return "[" + record.Plain{}.Get(option, "label").(string) + "]"
			},
			Icon: func(bool) string { return "v" },
		},
	})
	d.Toggle(event.Program)
	out := ansi.Strip(d.View())

	for _, want := range []string{"[A]", ">A", " B", "v"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewCustomListRenderer(t *testing.T) {
	d := newTestDropdown(t, Config{
		Options: abOptions(),
		Renderers: Renderers{
			List: func(options, _ record.Seq, option func(any) string) string {
				return fmt.Sprintf("%d options", options.Len())
			},
		},
	})
	d.Toggle(event.Program)
	lines := viewLines(d)
	if len(lines) != 2 || !strings.Contains(lines[1], "3 options") {
		t.Errorf("custom list not rendered below control: %q", lines)
	}
}
