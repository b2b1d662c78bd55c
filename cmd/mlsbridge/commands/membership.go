package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mlsbridge/internal/boundary"
	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
)

func printCommit(c domain.Commit) error {
	out, err := boundary.MarshalJSON(c)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <group> <key-package-b64>",
		Short: "Add a member; prints the commit and welcome as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := crypto.UnB64(args[1])
			if err != nil {
				return fmt.Errorf("key package: %w", err)
			}
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			commit, err := s.AddMember(kp)
			if err != nil {
				return err
			}
			return printCommit(commit)
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group> <member-id>",
		Short: "Remove a member by identity; prints the commit as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			commit, err := s.RemoveMember(args[1])
			if err != nil {
				return err
			}
			return printCommit(commit)
		},
	}
}

func applyCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply-commit <group> <commit-b64>",
		Short: "Apply a commit from another member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			commit, err := crypto.UnB64(args[1])
			if err != nil {
				return fmt.Errorf("commit: %w", err)
			}
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			if err := s.ProcessCommit(commit); err != nil {
				return err
			}
			epoch, err := s.CurrentEpoch()
			if err != nil {
				return err
			}
			fmt.Printf("Commit applied, epoch %d\n", epoch)
			return nil
		},
	}
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <group>",
		Short: "Merge your pending commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			if err := s.MergePendingCommit(); err != nil {
				return err
			}
			fmt.Println("merged")
			return nil
		},
	}
}

func discardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <group>",
		Short: "Discard your pending commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := appCtx.Session(profile, args[0])
			if err != nil {
				return err
			}
			if err := s.ClearPendingCommit(); err != nil {
				return err
			}
			fmt.Println("discarded")
			return nil
		},
	}
}
