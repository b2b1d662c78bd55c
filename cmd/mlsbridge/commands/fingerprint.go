package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client(profile)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", c.Fingerprint())
			return nil
		},
	}
}
