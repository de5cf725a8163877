package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"telebridge/internal/crypto"
	"telebridge/internal/relay"
)

// probeCmd walks a bridge through a node's start-up sequence: handshake,
// chain-access check, then an optional test push.
func probeCmd() *cobra.Command {
	var (
		bridgeURL string
		chainID   string
		push      bool
		gzip      bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check a running bridge the way a node would",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			c := relay.NewHTTP(bridgeURL, &http.Client{Timeout: timeout})
			out := cmd.OutOrStdout()

			pub, err := c.Handshake(ctx)
			if err != nil {
				return fmt.Errorf("handshake: %w", err)
			}
			fmt.Fprintf(out, "Public key:  %s (fingerprint %s)\n", pub.Hex(), crypto.Fingerprint(pub.Slice()))

			ok, err := c.ChainAccess(ctx, chainID)
			if err != nil {
				return fmt.Errorf("chain access: %w", err)
			}
			fmt.Fprintf(out, "Chain %s:    allowed=%t\n", chainID, ok)

			if !push {
				return nil
			}
			sample := fmt.Sprintf("# TYPE telebridge_probe gauge\ntelebridge_probe %d\n", time.Now().Unix())
			if err := c.PushMetrics(ctx, []byte(sample), relay.PushOptions{Gzip: gzip}); err != nil {
				return fmt.Errorf("push: %w", err)
			}
			fmt.Fprintln(out, "Test metric relayed")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&bridgeURL, "bridge", "http://localhost:8011", "bridge base URL")
	f.StringVar(&chainID, "chain-id", "1", "chain id to check")
	f.BoolVar(&push, "push", false, "also push a test metric")
	f.BoolVar(&gzip, "gzip", true, "gzip the test metric")
	f.DurationVar(&timeout, "timeout", 10*time.Second, "overall probe timeout")
	return cmd
}
