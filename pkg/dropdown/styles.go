package dropdown

import "github.com/charmbracelet/lipgloss"

// Palette shared by the default styles.
var (
	Primary  = lipgloss.Color("212")
	ErrColor = lipgloss.Color("196")
	Muted    = lipgloss.Color("241")
	Surface  = lipgloss.Color("236")
	Raised   = lipgloss.Color("238")
)

// Styles maps each part of the widget to a lipgloss style. Modifier styles
// (Multi, Single, Opened, Error, Disabled, OpenToTop, OpenToBottom,
// ListVirtualized, OptionVirtualized) are layered over their base style.
type Styles struct {
	Wrapper  lipgloss.Style
	Multi    lipgloss.Style
	Single   lipgloss.Style
	Opened   lipgloss.Style
	Error    lipgloss.Style
	Disabled lipgloss.Style

	SelectControl lipgloss.Style
	Selected      lipgloss.Style
	Placeholder   lipgloss.Style
	SelectedItem  lipgloss.Style
	CrossIcon     lipgloss.Style
	Search        lipgloss.Style
	ExpandIcon    lipgloss.Style

	List              lipgloss.Style
	ListVirtualized   lipgloss.Style
	OpenToBottom      lipgloss.Style
	OpenToTop         lipgloss.Style
	Option            lipgloss.Style
	OptionVirtualized lipgloss.Style
	SelectedOption    lipgloss.Style
	HighlightedOption lipgloss.Style
}

// DefaultStyles returns the built-in look.
func DefaultStyles() Styles {
	return Styles{
		Wrapper:  lipgloss.NewStyle(),
		Multi:    lipgloss.NewStyle(),
		Single:   lipgloss.NewStyle(),
		Opened:   lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle().Foreground(ErrColor),
		Disabled: lipgloss.NewStyle().Foreground(Muted).Faint(true),

		SelectControl: lipgloss.NewStyle().
			Background(Surface).
			Padding(0, 1),
		Selected:    lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(Muted),
		SelectedItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Raised).
			MarginRight(1),
		CrossIcon: lipgloss.NewStyle().
			Foreground(ErrColor).
			Bold(true),
		Search:     lipgloss.NewStyle(),
		ExpandIcon: lipgloss.NewStyle().Foreground(Primary),

		List: lipgloss.NewStyle().
			Background(lipgloss.Color("235")),
		ListVirtualized: lipgloss.NewStyle(),
		OpenToBottom:    lipgloss.NewStyle(),
		OpenToTop:       lipgloss.NewStyle(),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		OptionVirtualized: lipgloss.NewStyle(),
		SelectedOption: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		HighlightedOption: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")),
	}
}

// layer applies modifier over base when on is set.
func layer(base, modifier lipgloss.Style, on bool) lipgloss.Style {
	if !on {
		return base
	}
	return modifier.Inherit(base)
}
