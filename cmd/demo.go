package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/selectme/internal/config"
	"github.com/marcus/selectme/internal/screen"
	"github.com/marcus/selectme/pkg/dropdown"
	"github.com/marcus/selectme/pkg/dropdown/event"
	"github.com/marcus/selectme/pkg/dropdown/placement"
	"github.com/marcus/selectme/pkg/dropdown/record"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		flags     widgetFlags
		configure bool
		logFile   string
	)
	c := &cobra.Command{
		Use:   "demo",
		Short: "Interactive playground with two dropdowns",
		Long: `Demo opens a full-screen page with two dropdowns. A sits near the top and
opens downward; B sits near the bottom and opens upward. Clicking one closes
the other.`,
		Example: `  selectme demo -o Go -o Rust -o Zig -o Gleam --searchable
  selectme demo -f langs.toml --multiple --configure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				return fmt.Errorf("demo needs a terminal; use 'selectme render' instead")
			}

			if configure {
				if flags.position == "" {
					flags.position = string(placement.Auto)
				}
				if err := configureForm(&flags).Run(); err != nil {
					return fmt.Errorf("configure: %w", err)
				}
			}

			opts, err := flags.loadOptions(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			restore, err := demoLogging(a, logFile)
			if err != nil {
				return err
			}
			defer restore()

			m := newDemoModel(a.cfg, flags, opts)
			defer m.close()
			if w, h, err := term.GetSize(fd); err == nil {
				m.resize(w, h)
			}

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			_, err = p.Run()
			return err
		},
	}
	flags.register(c.Flags())
	c.Flags().BoolVar(&configure, "configure", false, "pick widget settings in a form before starting")
	c.Flags().StringVar(&logFile, "log-file", "", "write logs here while the demo runs")
	return c
}

// configureForm asks for the widget switches the flags did not pin down.
func configureForm(f *widgetFlags) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Allow multiple selection?").Value(&f.multiple),
			huh.NewConfirm().Title("Show a search box?").Value(&f.searchable),
			huh.NewConfirm().Title("Virtualize the list?").Value(&f.virtualized),
			huh.NewSelect[string]().
				Title("List position").
				Options(huh.NewOptions("auto", "top", "bottom")...).
				Value(&f.position),
		),
	)
}

// demoLogging keeps log output off the alternate screen: logs go to path
// when given and are dropped otherwise.
func demoLogging(a *app, path string) (func(), error) {
	prev := slog.Default()
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}
	slog.SetDefault(slog.New(newLogger(w, level)))
	return func() {
		slog.SetDefault(prev)
		closeFn()
	}, nil
}

var (
	demoTitle  = lipgloss.NewStyle().Bold(true).Foreground(dropdown.Primary)
	demoLabel  = lipgloss.NewStyle().Foreground(dropdown.Muted)
	demoStatus = lipgloss.NewStyle().Italic(true)
)

type demoKeys struct {
	Next key.Binding
	Quit key.Binding
}

func (k demoKeys) ShortHelp() []key.Binding  { return []key.Binding{k.Next, k.Quit} }
func (k demoKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type demoSlot struct {
	name string
	d    *dropdown.Dropdown
	// bottom anchors the widget to the bottom of the screen.
	bottom bool
}

// demoModel is the playground page. Mouse presses go to the topmost widget
// under the pointer, then to the shared document.
type demoModel struct {
	doc    *event.Document
	slots  []*demoSlot
	focus  int
	width  int
	height int
	keys   demoKeys
	help   help.Model
	status string
}

func newDemoModel(cfg *config.Config, flags widgetFlags, opts []record.Fields) *demoModel {
	m := &demoModel{
		doc: event.NewDocument(),
		keys: demoKeys{
			Next: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "switch")),
			Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
		help:   help.New(),
		status: "Click a dropdown or press enter.",
	}
	m.add("A", flags.dropdownConfig(cfg, opts), opts, false)
	m.add("B", flags.dropdownConfig(cfg, opts), opts, true)
	m.slots[0].d.Focus()
	return m
}

func (m *demoModel) add(name string, dc dropdown.Config, all []record.Fields, bottom bool) {
	s := &demoSlot{name: name, bottom: bottom}
	dc.ID = name
	dc.Document = m.doc
	dc.Hooks = dropdown.Hooks{
		OnChange: func(v any) dropdown.Verdict {
			s.d.SetValue(v)
			m.status = fmt.Sprintf("%s = %s", name, selectedLabels(s.d))
			if s.d.Config().Multiple {
				return dropdown.Veto
			}
			return dropdown.Proceed
		},
		OnOpen:  func() { slog.Debug("opened", "widget", name) },
		OnClose: func() { slog.Debug("closed", "widget", name) },
		OnSearch: func(q string) {
			c := s.d.Config()
			s.d.SetOptions(dropdown.FuzzyFilter(all, q, c.LabelKey, c.ValueKey, record.For(c.Immutable)))
		},
	}
	s.d = dropdown.New(dc)
	s.d.Mount()
	m.slots = append(m.slots, s)
}

func (m *demoModel) close() {
	for _, s := range m.slots {
		s.d.Unmount()
	}
}

func (m *demoModel) Init() tea.Cmd { return nil }

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % len(m.slots))
		default:
			return m, m.slots[m.focus].d.Update(msg)
		}
	}
	return m, nil
}

func (m *demoModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	for _, s := range m.slots {
		s.d.SetScreenSize(w, h)
		s.d.SetBounds(m.bounds(s))
	}
}

func (m *demoModel) bounds(s *demoSlot) placement.Rect {
	width := s.d.Config().Width
	if s.bottom {
		return placement.Rect{X: 2, Y: max(8, m.height-3), W: width, H: 1}
	}
	return placement.Rect{X: 2, Y: 5, W: width, H: 1}
}

func (m *demoModel) setFocus(i int) {
	for j, s := range m.slots {
		if j == i {
			s.d.Focus()
		} else {
			s.d.Blur()
		}
	}
	m.focus = i
}

// order returns slot indexes in draw order; the focused widget is on top.
func (m *demoModel) order() []int {
	out := make([]int, 0, len(m.slots))
	for i := range m.slots {
		if i != m.focus {
			out = append(out, i)
		}
	}
	return append(out, m.focus)
}

func (m *demoModel) mouse(msg tea.MouseMsg) {
	order := m.order()
	for i := len(order) - 1; i >= 0; i-- {
		s := m.slots[order[i]]
		if s.d.Hit(msg.X, msg.Y) {
			s.d.HandleMouse(msg)
			break
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	m.doc.Dispatch(event.Click(msg.X, msg.Y))
	for i, s := range m.slots {
		if i != m.focus && s.d.Focused() {
			m.setFocus(i)
			break
		}
	}
}

func (m *demoModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	bg := make([]string, m.height)
	bg[0] = demoTitle.Render("selectme demo")
	keys := append(m.slots[m.focus].d.Config().Keys.ShortHelp(), m.keys.ShortHelp()...)
	bg[1] = m.help.ShortHelpView(keys)
	bg[2] = demoStatus.Render(m.status)

	var layers []screen.Layer
	for _, i := range m.order() {
		s := m.slots[i]
		b := m.bounds(s)
		if b.Y-1 >= 3 && b.Y-1 < m.height {
			marker := " "
			if i == m.focus {
				marker = "›"
			}
			bg[b.Y-1] = demoLabel.Render(marker + " " + s.name)
		}
		view := s.d.View()
		x, y := s.d.ViewOrigin()
		layers = append(layers, screen.Layer{X: x, Y: y, View: view})
	}
	return screen.Compose(strings.Join(bg, "\n"), m.width, m.height, layers...)
}

func selectedLabels(d *dropdown.Dropdown) string {
	labels := labelsOf(d)
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, ", ")
}

// labelsOf returns the labels of the selected options, skipping holes.
func labelsOf(d *dropdown.Dropdown) []string {
	c := d.Config()
	acc := record.For(c.Immutable)
	sel := d.SelectedOptions()
	var labels []string
	for i := 0; i < record.Len(sel); i++ {
		if opt := sel.At(i); opt != nil {
			labels = append(labels, fmt.Sprint(acc.Get(opt, c.LabelKey)))
		}
	}
	return labels
}
