package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

var chatsListPublic bool
var chatsListPersonal bool
var chatsCreateMemberIDs []int64
var chatsCreateChannel bool
var chatsCreatePublic bool
var chatsCreateFailIfExists bool
var chatsRenameName string
var chatsRenamePublic string

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "Manage chats and channels",
	Long:  "Provides commands to list, find, create, update, and archive chats.",
}

var chatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available chats",
	Long:  "Lists the chats the token user is a member of, or public chats with --public.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsListLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find chats by exact name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsFindLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsGetCmd = &cobra.Command{
	Use:   "get <chat-id>",
	Short: "Show one chat's details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsGetLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new chat or channel",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsCreateLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsUpdateCmd = &cobra.Command{
	Use:   "update <chat-id>",
	Short: "Rename a chat or change its access type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsUpdateLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsArchiveCmd = &cobra.Command{
	Use:   "archive <chat-id>",
	Short: "Move a chat to the archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsArchiveLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var chatsUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <chat-id>",
	Short: "Restore a chat from the archive",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := chatsUnarchiveLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", what, arg)
	}
	return id, nil
}

func chatsListLogic(a *app.App, cmd *cobra.Command, args []string) error {
	opts := pachca.ChatListOptions{}
	if chatsListPublic {
		opts.Availability = pachca.AvailabilityPublic
	}
	if chatsListPersonal {
		personal := true
		opts.Personal = &personal
	}

	chats, err := a.SDK.GetChats(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("listing chats: %w", err)
	}
	ui.DisplayChats(chats)
	return nil
}

func chatsFindLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chats, err := a.SDK.FindChats(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("finding chats: %w", err)
	}
	ui.DisplayChats(chats)
	return nil
}

func chatsGetLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	chat, err := a.SDK.GetChat(cmd.Context(), chatID)
	if err != nil {
		return fmt.Errorf("getting chat: %w", err)
	}
	ui.DisplayChat(chat)
	return nil
}

func chatsCreateLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chat, err := a.SDK.CreateChat(cmd.Context(), pachca.NewChat{
		Name:         args[0],
		MemberIDs:    chatsCreateMemberIDs,
		Channel:      chatsCreateChannel,
		Public:       chatsCreatePublic,
		FailIfExists: chatsCreateFailIfExists,
	})
	if err != nil {
		return fmt.Errorf("creating chat: %w", err)
	}
	ui.Success(fmt.Sprintf("Created chat %q with ID %d.", chat.Name, chat.ID))
	return nil
}

func chatsUpdateLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}

	update := pachca.ChatUpdate{Name: chatsRenameName}
	if chatsRenamePublic != "" {
		public, err := strconv.ParseBool(chatsRenamePublic)
		if err != nil {
			return fmt.Errorf("invalid --public value %q: must be true or false", chatsRenamePublic)
		}
		update.Public = &public
	}

	chat, err := a.SDK.UpdateChat(cmd.Context(), chatID, update)
	if err != nil {
		return fmt.Errorf("updating chat: %w", err)
	}
	ui.Success(fmt.Sprintf("Updated chat %d.", chat.ID))
	return nil
}

func chatsArchiveLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	if err := a.SDK.ArchiveChat(cmd.Context(), chatID); err != nil {
		return fmt.Errorf("archiving chat: %w", err)
	}
	ui.Success(fmt.Sprintf("Archived chat %d.", chatID))
	return nil
}

func chatsUnarchiveLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	if err := a.SDK.UnarchiveChat(cmd.Context(), chatID); err != nil {
		return fmt.Errorf("unarchiving chat: %w", err)
	}
	ui.Success(fmt.Sprintf("Unarchived chat %d.", chatID))
	return nil
}

func init() {
	chatsListCmd.Flags().BoolVar(&chatsListPublic, "public", false, "List public chats instead of member chats")
	chatsListCmd.Flags().BoolVar(&chatsListPersonal, "personal", false, "List personal chats only")

	chatsCreateCmd.Flags().Int64SliceVar(&chatsCreateMemberIDs, "member-ids", nil, "User IDs to add as members")
	chatsCreateCmd.Flags().BoolVar(&chatsCreateChannel, "channel", false, "Create a read-only channel")
	chatsCreateCmd.Flags().BoolVar(&chatsCreatePublic, "public", false, "Make the chat public")
	chatsCreateCmd.Flags().BoolVar(&chatsCreateFailIfExists, "fail-if-exists", false, "Fail when a chat with the same name exists")

	chatsUpdateCmd.Flags().StringVar(&chatsRenameName, "name", "", "New chat name")
	chatsUpdateCmd.Flags().StringVar(&chatsRenamePublic, "public", "", "New access type: true or false")

	chatsCmd.AddCommand(chatsListCmd, chatsFindCmd, chatsGetCmd, chatsCreateCmd, chatsUpdateCmd, chatsArchiveCmd, chatsUnarchiveCmd)
	rootCmd.AddCommand(chatsCmd)
}
