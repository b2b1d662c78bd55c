package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mlsbridge/internal/app"
	"mlsbridge/internal/crypto"
	"mlsbridge/internal/domain"
)

// create-group [group-id]: found a group, using a random UUID when no hex id is given.
func createGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-group [group-id-hex]",
		Short: "Create a group with yourself as the only member",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var groupID domain.GroupID
			if len(args) == 1 {
				id, err := app.ParseGroupID(args[0])
				if err != nil {
					return err
				}
				groupID = id
			} else {
				u := uuid.New()
				groupID = domain.GroupID(u[:])
			}
			c, err := appCtx.Client(profile)
			if err != nil {
				return err
			}
			if _, err := c.CreateGroup(groupID); err != nil {
				return fmt.Errorf("creating group: %w", err)
			}
			if err := appCtx.TrackGroup(profile, groupID); err != nil {
				return err
			}
			fmt.Printf("Group created: %s\n", groupID)
			return nil
		},
	}
}

func joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <welcome-b64>",
		Short: "Join a group from a welcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			welcome, err := crypto.UnB64(args[0])
			if err != nil {
				return fmt.Errorf("welcome: %w", err)
			}
			c, err := appCtx.Client(profile)
			if err != nil {
				return err
			}
			s, err := c.JoinGroup(welcome)
			if err != nil {
				return fmt.Errorf("joining group: %w", err)
			}
			if err := appCtx.TrackGroup(profile, s.GroupID()); err != nil {
				return err
			}
			epoch, err := s.CurrentEpoch()
			if err != nil {
				return err
			}
			fmt.Printf("Joined group %s at epoch %d\n", s.GroupID(), epoch)
			return nil
		},
	}
}

func groupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List groups of the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := appCtx.Groups(profile)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
