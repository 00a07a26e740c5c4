package commands

import (
	"fmt"

	"finance-dashboard/internal/config"

	"github.com/spf13/cobra"
)

func newKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a new RS256 key pair as JWT_PRIVATE_KEY and JWT_PUBLIC_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKey, _, err := config.GenerateRSAKeyPair()
			if err != nil {
				return err
			}
			privateB64, publicB64, err := config.EncodeKeyPair(privateKey)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "JWT_PRIVATE_KEY=%s\nJWT_PUBLIC_KEY=%s\n", privateB64, publicB64)
			return nil
		},
	}
}
