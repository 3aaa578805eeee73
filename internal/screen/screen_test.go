package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestNewPadsAndCrops(t *testing.T) {
	c := New("abc\ndefghij\nx\ny", 5, 3)
	want := "abc  \ndefgh\nx    "
	if got := c.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if w, h := c.Size(); w != 5 || h != 3 {
		t.Errorf("size = %dx%d", w, h)
	}
}

func TestPlace(t *testing.T) {
	bg := strings.Repeat(".....\n", 4)
	tests := []struct {
		name string
		x, y int
		view string
		want string
	}{
		{"inside", 1, 1, "ab\ncd", ".....\n.ab..\n.cd..\n....."},
		{"clipped right", 4, 0, "abc", "....a\n.....\n.....\n....."},
		{"clipped left", -1, 0, "abc", "bc...\n.....\n.....\n....."},
		{"clipped bottom", 0, 3, "a\nb", ".....\n.....\n.....\na...."},
		{"above screen", 0, -1, "a\nb", "b....\n.....\n.....\n....."},
		{"off screen", 9, 9, "a", ".....\n.....\n.....\n....."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(bg, 5, 4)
			c.Place(tt.x, tt.y, tt.view)
			if got := c.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestComposeOrder(t *testing.T) {
	got := Compose("", 4, 1,
		Layer{X: 0, Y: 0, View: "aaaa"},
		Layer{X: 1, Y: 0, View: "bb"},
	)
	if got != "abba" {
		t.Errorf("got %q, want abba", got)
	}
}

func TestPlaceKeepsWidthWithStyles(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("xy")
	c := New("------", 6, 1)
	c.Place(2, 0, styled)

	line := c.String()
	if w := lipgloss.Width(line); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
	if plain := ansi.Strip(line); plain != "--xy--" {
		t.Errorf("plain = %q, want --xy--", plain)
	}
}

func TestPlaceWideRunes(t *testing.T) {
	c := New("......", 6, 1)
	c.Place(1, 0, "日本")
	if got := c.String(); lipgloss.Width(got) != 6 || ansi.Strip(got) != ".日本." {
		t.Errorf("got %q", got)
	}
}
