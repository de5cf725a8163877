package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"telebridge/internal/app"
	"telebridge/internal/logging"
)

var (
	cfg = app.DefaultConfig()
	log *zap.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "telebridge",
		Short:        "Relay node telemetry metrics to a Prometheus push gateway",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")

	root.AddCommand(serveCmd(), keygenCmd(), probeCmd())
	return root
}
