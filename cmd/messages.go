package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

var messagesSendToUser bool
var messagesSendParentID int64
var messagesSendLinkPreview bool
var messagesSendFiles []string
var messagesSendImages []string
var messagesListAsc bool

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Send and manage messages",
	Long:  "Provides commands to send, edit, pin, delete, and list messages.",
}

var messagesSendCmd = &cobra.Command{
	Use:   "send <chat-id|user-id> <content>",
	Short: "Send a message to a chat or a user",
	Long:  "Sends a message to a chat by ID, or to a user's personal chat with --user.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesSendLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesEditCmd = &cobra.Command{
	Use:   "edit <message-id> <content>",
	Short: "Replace a message's content",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesEditLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesListCmd = &cobra.Command{
	Use:   "list <chat-id>",
	Short: "List a chat's messages",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesListLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesGetCmd = &cobra.Command{
	Use:   "get <message-id>",
	Short: "Show one message's details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesGetLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesPinCmd = &cobra.Command{
	Use:   "pin <message-id>",
	Short: "Pin a message in its chat",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesPinLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesUnpinCmd = &cobra.Command{
	Use:   "unpin <message-id>",
	Short: "Unpin a message",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesUnpinLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete <message-id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := messagesDeleteLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

// attachmentFiles builds File descriptors for the --file and --image
// flags.
func attachmentFiles() ([]*pachca.File, error) {
	var files []*pachca.File
	for _, path := range messagesSendFiles {
		f, err := pachca.NewFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	for _, path := range messagesSendImages {
		f, err := pachca.NewImage(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func messagesSendLogic(a *app.App, cmd *cobra.Command, args []string) error {
	entityID, err := parseID(args[0], "target ID")
	if err != nil {
		return err
	}
	files, err := attachmentFiles()
	if err != nil {
		return err
	}

	msg := pachca.NewMessage{
		EntityID:    entityID,
		EntityType:  pachca.EntityDiscussion,
		Content:     args[1],
		LinkPreview: messagesSendLinkPreview,
		Files:       files,
	}
	if messagesSendToUser {
		msg.EntityType = pachca.EntityUser
	}
	if messagesSendParentID > 0 {
		msg.ParentMessageID = &messagesSendParentID
	}

	created, err := a.SDK.CreateMessage(cmd.Context(), msg)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	ui.Success(fmt.Sprintf("Sent message %d.", created.ID))
	return nil
}

func messagesEditLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	updated, err := a.SDK.UpdateMessage(cmd.Context(), messageID, args[1])
	if err != nil {
		return fmt.Errorf("editing message: %w", err)
	}
	ui.Success(fmt.Sprintf("Edited message %d.", updated.ID))
	return nil
}

func messagesListLogic(a *app.App, cmd *cobra.Command, args []string) error {
	chatID, err := parseID(args[0], "chat ID")
	if err != nil {
		return err
	}
	direction := pachca.SortDesc
	if messagesListAsc {
		direction = pachca.SortAsc
	}

	messages, err := a.SDK.GetMessages(cmd.Context(), chatID, direction)
	if err != nil {
		return fmt.Errorf("listing messages: %w", err)
	}
	ui.DisplayMessages(messages)
	return nil
}

func messagesGetLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	msg, err := a.SDK.GetMessage(cmd.Context(), messageID)
	if err != nil {
		return fmt.Errorf("getting message: %w", err)
	}
	ui.DisplayMessage(msg)
	return nil
}

func messagesPinLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	if err := a.SDK.PinMessage(cmd.Context(), messageID); err != nil {
		return fmt.Errorf("pinning message: %w", err)
	}
	ui.Success(fmt.Sprintf("Pinned message %d.", messageID))
	return nil
}

func messagesUnpinLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	if err := a.SDK.UnpinMessage(cmd.Context(), messageID); err != nil {
		return fmt.Errorf("unpinning message: %w", err)
	}
	ui.Success(fmt.Sprintf("Unpinned message %d.", messageID))
	return nil
}

func messagesDeleteLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	if err := a.SDK.DeleteMessage(cmd.Context(), messageID); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	ui.Success(fmt.Sprintf("Deleted message %d.", messageID))
	return nil
}

func init() {
	messagesSendCmd.Flags().BoolVar(&messagesSendToUser, "user", false, "Treat the target as a user ID instead of a chat ID")
	messagesSendCmd.Flags().Int64Var(&messagesSendParentID, "reply-to", 0, "Message ID to reply to")
	messagesSendCmd.Flags().BoolVar(&messagesSendLinkPreview, "link-preview", false, "Render a preview of the first link")
	messagesSendCmd.Flags().StringSliceVar(&messagesSendFiles, "file", nil, "Attach a local file (repeatable)")
	messagesSendCmd.Flags().StringSliceVar(&messagesSendImages, "image", nil, "Attach a local image (repeatable)")
	messagesListCmd.Flags().BoolVar(&messagesListAsc, "asc", false, "List oldest messages first")

	messagesCmd.AddCommand(messagesSendCmd, messagesEditCmd, messagesListCmd, messagesGetCmd, messagesPinCmd, messagesUnpinCmd, messagesDeleteCmd)
	rootCmd.AddCommand(messagesCmd)
}
