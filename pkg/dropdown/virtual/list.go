// Package virtual renders long option lists by drawing only the rows that fit
// in a fixed-size window.
package virtual

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List is a fixed-size window over RowCount rows. Only rows between Offset
// and the bottom of the window are rendered.
type List struct {
	Width       int
	Height      int
	RowCount    int
	RowHeight   func(i int) int
	RowRenderer func(i int) string
	Offset      int
}

func (l *List) rowHeight(i int) int {
	if l.RowHeight == nil {
		return 1
	}
	return max(1, l.RowHeight(i))
}

// VisibleRange returns the half-open range of rows drawn in the window.
func (l *List) VisibleRange() (start, end int) {
	start = clamp(l.Offset, 0, max(0, l.RowCount-1))
	used := 0
	end = start
	for end < l.RowCount {
		h := l.rowHeight(end)
		if used+h > l.Height && end > start {
			break
		}
		used += h
		end++
		if used >= l.Height {
			break
		}
	}
	return start, end
}

// ScrollTo adjusts Offset so row i is inside the window.
func (l *List) ScrollTo(i int) {
	if l.RowCount == 0 {
		l.Offset = 0
		return
	}
	i = clamp(i, 0, l.RowCount-1)
	if i < l.Offset {
		l.Offset = i
		return
	}
	for {
		start, end := l.VisibleRange()
		if i < end || start >= i {
			return
		}
		l.Offset++
	}
}

// Scroll moves the window by delta rows.
func (l *List) Scroll(delta int) {
	l.Offset = clamp(l.Offset+delta, 0, max(0, l.RowCount-1))
}

// RowAt maps a line inside the window to the row drawn there.
func (l *List) RowAt(line int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	start, end := l.VisibleRange()
	y := 0
	for i := start; i < end; i++ {
		h := l.rowHeight(i)
		if line < y+h {
			return i, true
		}
		y += h
	}
	return 0, false
}

// View draws the visible rows, each padded to Width and its row height.
func (l *List) View() string {
	if l.Height <= 0 || l.RowCount == 0 || l.RowRenderer == nil {
		return ""
	}
	start, end := l.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cell := lipgloss.NewStyle().Width(l.Width).Height(l.rowHeight(i)).MaxHeight(l.rowHeight(i))
		rows = append(rows, cell.Render(l.RowRenderer(i)))
	}
	out := strings.Join(rows, "\n")
	return lipgloss.NewStyle().MaxHeight(l.Height).Render(out)
}

// AutoWidth measures rendered content so a list can match the width of the
// control it hangs from. The result is never below minWidth.
func AutoWidth(content string, minWidth int) int {
	return max(lipgloss.Width(content), minWidth)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
