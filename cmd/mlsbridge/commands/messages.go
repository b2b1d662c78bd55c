package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlsbridge/internal/boundary"
	"mlsbridge/internal/crypto"
)

// encrypt <group> <message>: prints the ciphertext envelope (epoch + data) as base64.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <group> <message>",
		Short: "Encrypt an application message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			ct, err := s.Encrypt([]byte(args[1]))
			if err != nil {
				return err
			}
			out, err := boundary.MarshalCiphertext(ct)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(out))
			return nil
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <group> <ciphertext-b64>",
		Short: "Decrypt an application message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := crypto.UnB64(args[1])
			if err != nil {
				return fmt.Errorf("ciphertext: %w", err)
			}
			ct, err := boundary.UnmarshalCiphertext(raw)
			if err != nil {
				return err
			}
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			pt, err := s.DecryptCiphertext(ct)
			if err != nil {
				return err
			}
			fmt.Printf("[epoch %d] %s\n", ct.Epoch, pt)
			return nil
		},
	}
}

func epochCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "epoch <group>",
		Short: "Print the current epoch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			epoch, err := s.CurrentEpoch()
			if err != nil {
				return err
			}
			fmt.Println(epoch)
			return nil
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <group>",
		Short: "Print group id, epoch and members as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			info, err := s.Info()
			if err != nil {
				return err
			}
			out, err := boundary.MarshalJSON(info)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
