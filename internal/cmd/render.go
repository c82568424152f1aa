package cmd

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		raw      bool
		noPrefix bool
		vars     []string
	)

	renderCmd := &cobra.Command{
		Use:   "render <key> [args...]",
		Short: "Render a message from the config",
		Long: `Render the message at a dotted key. Positional args fill the indexed
placeholders {0}, {1}, ...; repeatable --var name=value pairs fill named
%name tokens. List-valued keys render one line per element.

Examples:
  plugconf render messages.welcome Steve
  plugconf render messages.goodbye --var playerName=Steve`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := openConfig(opts)
			if err != nil {
				return err
			}
			if noPrefix {
				cfg.SetExcludePrefix(true)
			} else {
				cfg.AutoExcludePrefix()
			}
			if raw {
				conf.SetColorEnabled(false)
			}

			key := args[0]
			if !cfg.IsSet(key) {
				return NewExitError(fmt.Errorf("key %q not found in %s", key, opts.configFile), ExitNotFound)
			}

			indexed := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				indexed = append(indexed, a)
			}

			pairs, err := parseVars(vars)
			if err != nil {
				return err
			}

			out := command.OutOrStdout()
			if isList(cfg.Get(key)) {
				for _, line := range cfg.MessageList(key, indexed...) {
					fmt.Fprintln(out, line)
				}
				return nil
			}

			if len(pairs) > 0 {
				fmt.Fprintln(out, cfg.PrefixedMessageNamed(key, pairs...))
				return nil
			}
			fmt.Fprintln(out, cfg.Message(key, indexed...))
			return nil
		},
	}

	renderCmd.Flags().BoolVar(&raw, "raw", false, "skip color translation")
	renderCmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "skip the message prefix")
	renderCmd.Flags().StringArrayVar(&vars, "var", nil, "named token as name=value (repeatable)")

	return renderCmd
}

// parseVars turns repeated name=value flags into alternating token pairs.
func parseVars(vars []string) ([]any, error) {
	pairs := make([]any, 0, len(vars)*2)
	for _, v := range vars {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q, expected name=value", v)
		}
		pairs = append(pairs, name, value)
	}
	return pairs, nil
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}
