package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <identity>",
		Short: "Generate a signature key pair and bind it to an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.InitProfile(profile, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Identity %q created for profile %q.\nFingerprint: %s\n", args[0], profile, c.Fingerprint())
			return nil
		},
	}
}
