package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/marcus/selectme/pkg/dropdown"
	"github.com/marcus/selectme/pkg/dropdown/event"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		flags    widgetFlags
		open     bool
		plain    bool
		selected bool
	)
	c := &cobra.Command{
		Use:   "render",
		Short: "Print a headless render of a dropdown",
		Long: `Render builds a dropdown without a screen and prints its view. With no
geometry the list always opens below the control at the fixed or maximum
list height.`,
		Example: `  selectme render -o Go -o Rust -o Zig --value Rust --open
  selectme render -f langs.json --multiple --value go --value zig`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.loadOptions(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}

			dc := flags.dropdownConfig(a.cfg, opts)
			dc.Headless = true
			dc.Document = event.NewDocument()
			d := dropdown.New(dc)
			if open {
				d.Toggle(event.Program)
			}

			out := cmd.OutOrStdout()
			if selected {
				return printSelected(cmd, d)
			}
			view := d.View()
			if plain {
				view = ansi.Strip(view)
			}
			_, err = fmt.Fprintln(out, view)
			return err
		},
	}
	flags.register(c.Flags())
	c.Flags().BoolVar(&open, "open", false, "render with the list open")
	c.Flags().BoolVar(&plain, "plain", false, "strip colors and styles")
	c.Flags().BoolVar(&selected, "selected", false, "print the selected labels instead of the view")
	return c
}

func printSelected(cmd *cobra.Command, d *dropdown.Dropdown) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(labelsOf(d), "\n"))
	return err
}
