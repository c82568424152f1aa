package cmd

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
)

func newTidyCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	tidyCmd := &cobra.Command{
		Use:   "tidy [keys...]",
		Short: "Deduplicate list entries and save",
		Long: `Remove duplicate entries from list-valued keys, keeping the first
occurrence of each value, and write the result back to the config file.
Without arguments every list-valued key is tidied.`,
		RunE: func(command *cobra.Command, args []string) error {
			cfg, err := openConfig(opts)
			if err != nil {
				return err
			}

			keys := args
			if len(keys) == 0 {
				keys = cfg.ListKeys()
			}

			out := command.OutOrStdout()
			changed := 0
			for _, key := range keys {
				before := listLen(cfg.Get(key))
				cfg.MakeListDistinct(key)
				after := listLen(cfg.Get(key))

				if removed := before - after; removed > 0 {
					changed++
					fmt.Fprintf(out, "%s %s\n",
						output.StyleKey.Render(key),
						output.StyleWarning.Render(fmt.Sprintf("-%d duplicate(s)", removed)))
				} else {
					fmt.Fprintf(out, "%s %s\n",
						output.StyleKey.Render(key),
						output.StyleDim.Render("clean"))
				}
			}

			if changed == 0 {
				fmt.Fprintln(out, output.FormatCheckmark("nothing to tidy"))
				return nil
			}
			if dryRun {
				fmt.Fprintf(out, "%d key(s) would change (dry run, not saved)\n", changed)
				return nil
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("tidied %d key(s): %s", changed, opts.configFile)))
			return nil
		},
	}

	tidyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report duplicates without saving")

	return tidyCmd
}

func listLen(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return 0
	}
	return rv.Len()
}
