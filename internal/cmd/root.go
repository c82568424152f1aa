package cmd

import (
	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

// rootOptions holds the persistent flag values shared by all subcommands.
type rootOptions struct {
	configFile string
	verbose    bool
	noColor    bool
}

// NewRootCmd creates the plugconf root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "plugconf",
		Short: "YAML plugin-config and message toolkit",
		Long: `plugconf inspects and maintains YAML plugin configuration files.

It provides commands to:
  - Create a starter config and validate existing ones
  - Read values and render chat messages with placeholders and colors
  - Deduplicate list entries and diff config files
  - Watch a config file and reload it on change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			output.SetupLogging(opts.verbose)
			if opts.noColor || !output.IsTTY() {
				conf.SetColorEnabled(false)
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "config.yml", "path to the config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "increase output verbosity")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable color translation in output")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newTidyCmd(opts))
	root.AddCommand(newDiffCmd(opts))
	root.AddCommand(newVetCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// openConfig loads the target config file for read-oriented commands.
func openConfig(opts *rootOptions) (*conf.Config, error) {
	return conf.Open(opts.configFile)
}
