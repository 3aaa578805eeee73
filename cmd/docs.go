package cmd

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed reference.md
var referenceMarkdown string

func newDocsCmd() *cobra.Command {
	var (
		raw   bool
		width int
		style string
	)
	c := &cobra.Command{
		Use:   "docs",
		Short: "Show the widget reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := strings.TrimSpace(referenceMarkdown)
			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), md)
				return err
			}
			out, err := renderMarkdown(md, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	c.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	c.Flags().IntVar(&width, "width", 80, "wrap width")
	c.Flags().StringVar(&style, "style", "dark", "glamour style: dark, light, notty, ascii")
	return c
}

func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("docs renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render docs: %w", err)
	}
	return out, nil
}
