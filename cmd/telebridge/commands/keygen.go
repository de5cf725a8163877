package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"telebridge/internal/domain"
	"telebridge/internal/identity"
)

// keygenCmd prints a fresh identity so operators can see what the generated
// variant serves. Nothing is written to disk; serve makes its own at start-up.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an X25519 identity and print its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identity.New(domain.VariantGenerated)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\nFingerprint: %s\n", id.PublicKeyHex(), id.Fingerprint())
			return nil
		},
	}
}
