package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/diff"
	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

func newDiffCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Show a YAML-aware diff between two config files",
		Args:  cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			result, err := diff.CompareFiles(args[0], args[1], conf.ColorEnabled())
			if err != nil {
				return err
			}

			out := command.OutOrStdout()
			if !result.HasChanges() {
				fmt.Fprintln(out, output.FormatCheckmark(result.Summary()))
				return nil
			}

			fmt.Fprintf(out, "%s %s %s (%s)\n",
				output.StyleKey.Render(result.From),
				output.StyleDim.Render("→"),
				output.StyleKey.Render(result.To),
				result.Summary())
			fmt.Fprintln(out, result.Report)
			return nil
		},
	}
}
