package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DarknessDeveloper/asdev-utils-config-class/internal/output"
	"github.com/DarknessDeveloper/asdev-utils-config-class/pkg/conf"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the config file and reload it on change",
		Long: `Watch the config file and reload it whenever it changes on disk.
A failed reload keeps the previous values. Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			cfg, err := conf.Open(opts.configFile, conf.WithLogger(output.Logger))
			if err != nil {
				return err
			}

			watcher, err := conf.NewWatcher(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(command.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := watcher.Start(ctx); err != nil {
				return err
			}
			defer watcher.Stop()

			<-ctx.Done()
			output.Info("stopping watcher")
			return nil
		},
	}
}
