package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/templates"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config file",
		Long: `Create a starter config file with a prefix section and example messages.

The file is written to the path given with --config (default "config.yml").`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			path := opts.configFile

			if _, err := os.Stat(path); err == nil && !force {
				return NewExitError(
					fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
					ExitGeneralError,
				)
			} else if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("checking config file: %w", err)
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating config directory: %w", err)
				}
			}

			header := []byte("# plugconf starter configuration\n\n")
			data := append(header, templates.Starter()...)
			if err := renameio.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return initCmd
}
