package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlsbridge/internal/crypto"
)

func keyPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key-package",
		Short: "Export a fresh key package (base64)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Client(profile)
			if err != nil {
				return err
			}
			kp, err := c.ExportKeyPackage()
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(kp))
			return nil
		},
	}
}
