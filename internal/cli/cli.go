package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the build version, set by ldflags in cmd/biofabric/main.go.
var Version = "dev"

// CLI holds the flags shared by every subcommand's PersistentPreRun.
type CLI struct {
	quiet      bool
	verbose    bool
	configPath string
	cfg        config
}

// New returns an unconfigured CLI; RootCommand wires its flags.
func New() *CLI {
	return &CLI{cfg: defaultConfig()}
}

// RootCommand builds the biofabric root cobra command with every
// subcommand registered, mirroring matzehuels/stacktower's
// internal/cli.RootCommand shape (one CLI struct, one method per
// subcommand factory, persistent flags resolved once in PersistentPreRunE).
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "biofabric",
		Short:         "Lay out, align, and inspect BioFabric network visualizations",
		Long:          "biofabric runs BioFabric's node/edge layout and two-network alignment pipeline from the command line: layout, render, info, convert, align, compare, extract, export-order, and search.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			level := levelFromName(cfg.LogLevel)
			if c.verbose {
				level = charmlog.DebugLevel
			}
			if c.quiet {
				level = charmlog.FatalLevel
			}

			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug-level logging")
	root.PersistentFlags().BoolVar(&c.quiet, "quiet", false, "suppress progress/log output")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a biofabric TOML config file (default .biofabric.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.alignCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.exportOrderCommand())
	root.AddCommand(c.searchCommand())

	return root
}
