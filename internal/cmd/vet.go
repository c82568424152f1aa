package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

func newVetCmd(opts *rootOptions) *cobra.Command {
	var schemaFile string

	vetCmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate the config file",
		Long: `Check that the config file parses as YAML. With --schema, the settings
are additionally validated against a CUE schema.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			var cfg *conf.Config
			err := output.RunWithSpinner(command.Context(), "Validating...", func() error {
				var err error
				cfg, err = openConfig(opts)
				if err != nil {
					return err
				}
				if schemaFile == "" {
					return nil
				}

				schema, err := os.ReadFile(schemaFile)
				if err != nil {
					return fmt.Errorf("reading schema: %w", err)
				}
				validator, err := conf.NewValidator(schema)
				if err != nil {
					return err
				}
				return validator.Validate(cfg)
			})

			if err != nil {
				var validationErrs conf.ValidationErrors
				if errors.As(err, &validationErrs) {
					fmt.Fprintln(command.ErrOrStderr(), output.StyleError.Render("config validation failed"))
					fmt.Fprintf(command.ErrOrStderr(), "  File: %s\n\n", opts.configFile)
					for _, e := range validationErrs {
						fmt.Fprintf(command.ErrOrStderr(), "  %s\n", e.Error())
					}
					return NewExitError(err, ExitValidationError)
				}
				return err
			}

			fmt.Fprintln(command.OutOrStdout(), output.FormatCheckmark("config file is valid: "+opts.configFile))
			return nil
		},
	}

	vetCmd.Flags().StringVar(&schemaFile, "schema", "", "CUE schema file to validate against")

	return vetCmd
}
