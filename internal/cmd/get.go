package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var formatFlag string

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value at a dotted key",
		Long: `Print the value at a dotted key, for example "prefix.prefix" or
"messages.welcome". Without a key, the whole settings tree is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := openConfig(opts)
			if err != nil {
				return err
			}

			var value any
			if len(args) == 0 {
				value = cfg.AllSettings()
			} else {
				key := args[0]
				if !cfg.IsSet(key) {
					return NewExitError(fmt.Errorf("key %q not found in %s", key, opts.configFile), ExitNotFound)
				}
				value = cfg.Get(key)
			}

			data, err := output.Marshal(value, output.ParseFormat(formatFlag))
			if err != nil {
				return err
			}
			fmt.Fprint(command.OutOrStdout(), string(data))
			return nil
		},
	}

	getCmd.Flags().StringVarP(&formatFlag, "output", "o", "yaml",
		fmt.Sprintf("output format (%s)", strings.Join(output.ValidFormats(), "|")))

	return getCmd
}
