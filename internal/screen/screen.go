// Package screen composites widget views over a background at absolute cell
// positions. Dropdowns open over whatever is below or above them, so the
// demo draws the page first and layers each widget at its ViewOrigin.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layer is a view drawn with its top-left corner at X, Y.
type Layer struct {
	X, Y int
	View string
}

// Canvas is a fixed-size grid of rendered lines.
type Canvas struct {
	width, height int
	lines         []string
}

// New sizes background to width x height, cropping or padding as needed.
func New(background string, width, height int) *Canvas {
	width, height = max(0, width), max(0, height)
	lines := strings.Split(background, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = fit(lines[i], width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

// Place draws view over the canvas. Parts falling outside are clipped.
func (c *Canvas) Place(x, y int, view string) {
	if view == "" {
		return
	}
	for row, line := range strings.Split(view, "\n") {
		dy := y + row
		if dy < 0 || dy >= c.height {
			continue
		}
		dx := x
		if dx < 0 {
			line = ansi.TruncateLeft(line, -dx, "")
			dx = 0
		}
		if dx >= c.width {
			continue
		}
		w := min(lipgloss.Width(line), c.width-dx)
		if w <= 0 {
			continue
		}
		line = ansi.Truncate(line, w, "")

		base := c.lines[dy]
		left := ansi.Truncate(base, dx, "")
		right := ansi.TruncateLeft(base, dx+w, "")
		c.lines[dy] = left + line + right
	}
}

// String renders the canvas.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Compose draws layers over background in order; later layers win.
func Compose(background string, width, height int, layers ...Layer) string {
	c := New(background, width, height)
	for _, l := range layers {
		c.Place(l.X, l.Y, l.View)
	}
	return c.String()
}

func fit(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(s, width, "")
}
