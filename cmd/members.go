package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
)

var membersListRole string
var membersAddSilent bool

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage chat members",
	Long:  "Provides commands to list chat members, add and remove them, and change roles.",
}

var membersListCmd = &cobra.Command{
	Use:   "list <chat-id>",
	Short: "List a chat's members",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := membersListLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var membersAddCmd = &cobra.Command{
	Use:   "add <chat-id> <user-id>...",
	Short: "Add users to a chat",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := membersAddLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var membersRoleCmd = &cobra.Command{
	Use:   "role <chat-id> <user-id> <role>",
	Short: "Change a member's role",
	Long:  "Changes a member's role in a chat. Roles: member, admin, and editor (channels only).",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := membersRoleLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var membersRemoveCmd = &cobra.Command{
	Use:   "remove <chat-id> <user-id>",
	Short: "Remove a user from a chat",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := membersRemoveLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func membersListLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	members, err := a.SDK.GetMembers(cmd.Context(), chatID, membersListRole)
	if err != nil {
		return fmt.Errorf("listing members: %w", err)
	}
	ui.DisplayMembers(members)
	return nil
}

func membersAddLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	memberIDs := make([]int64, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := parseID(arg, "user ID")
		if err != nil {
			return err
		}
		memberIDs = append(memberIDs, id)
	}

	if err := a.SDK.AddMembers(cmd.Context(), chatID, memberIDs, membersAddSilent); err != nil {
		return fmt.Errorf("adding members: %w", err)
	}
	ui.Success(fmt.Sprintf("Added %d member(s) to chat %d.", len(memberIDs), chatID))
	return nil
}

func membersRoleLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	memberID, err := parseID(args[1], "user ID")
	if err != nil {
		return err
	}

	if err := a.SDK.UpdateMemberRole(cmd.Context(), chatID, memberID, args[2]); err != nil {
		return fmt.Errorf("updating member role: %w", err)
	}
	ui.Success(fmt.Sprintf("Set role of user %d in chat %d to %s.", memberID, chatID, args[2]))
	return nil
}

func membersRemoveLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	memberID, err := parseID(args[1], "user ID")
	if err != nil {
		return err
	}

	if err := a.SDK.RemoveMember(cmd.Context(), chatID, memberID); err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	ui.Success(fmt.Sprintf("Removed user %d from chat %d.", memberID, chatID))
	return nil
}

func init() {
	membersListCmd.Flags().StringVar(&membersListRole, "role", "", "Filter by role: all, owner, admin, editor")
	membersAddCmd.Flags().BoolVar(&membersAddSilent, "silent", false, "Skip the system message announcing new members")

	membersCmd.AddCommand(membersListCmd, membersAddCmd, membersRoleCmd, membersRemoveCmd)
	rootCmd.AddCommand(membersCmd)
}
