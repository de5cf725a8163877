package commands

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"telebridge/internal/app"
	"telebridge/internal/domain"
)

func serveCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the telemetry bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Variant = domain.Variant(variant)
			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(),
				"Point a node at the bridge with:\n  TELEMETRY_SERVICE_URL=\"http://localhost%s\" APTOS_FORCE_ENABLE_TELEMETRY=true\n",
				listenSuffix(cfg.Listen))
			if err := a.Run(ctx); err != nil {
				log.Error("bridge stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Listen, "listen", cfg.Listen, "node-facing listen address")
	f.StringVar(&cfg.MetricsListen, "metrics-listen", cfg.MetricsListen, "address for the bridge's own /metrics (empty disables)")
	f.StringVar(&cfg.GatewayHost, "gateway-host", cfg.GatewayHost, "push gateway host")
	f.IntVar(&cfg.GatewayPort, "gateway-port", cfg.GatewayPort, "push gateway port")
	f.StringVar(&cfg.Job, "job", cfg.Job, "push gateway job name")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout for each push")
	f.StringVar(&variant, "variant", string(cfg.Variant), "identity variant: static or generated")
	f.Int64Var(&cfg.MaxPayloadBytes, "max-payload-bytes", cfg.MaxPayloadBytes, "cap on a decompressed payload (negative disables)")
	f.BoolVar(&cfg.MDNS, "mdns", cfg.MDNS, "advertise the bridge over mDNS")
	return cmd
}

// listenSuffix turns ":8011" or "0.0.0.0:8011" into ":8011" for the hint.
func listenSuffix(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return ":" + port
}
