package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/marcus/selectme/internal/config"
)

var version = "dev"

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *log.Logger
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "selectme",
		Short: "Terminal select widget playground",
		Long: `selectme - a select/dropdown widget for Bubble Tea programs.

Try the widget interactively with 'selectme demo', print a headless render
with 'selectme render', or read the reference with 'selectme docs'.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/selectme/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDemoCmd(a), newRenderCmd(a), newDocsCmd())
	return root
}

// setup loads config and installs the logger as the slog default.
func (a *app) setup(w io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = newLogger(w, level)
	slog.SetDefault(slog.New(a.logger))
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
