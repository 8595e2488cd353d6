package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/ui"
)

var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Manage message threads",
	Long:  "Provides commands to open threads on messages, inspect them, and reply.",
}

var threadsOpenCmd = &cobra.Command{
	Use:   "open <message-id>",
	Short: "Open a comment thread on a message",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := threadsOpenLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var threadsGetCmd = &cobra.Command{
	Use:   "get <thread-id>",
	Short: "Show one thread's details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := threadsGetLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

var threadsReplyCmd = &cobra.Command{
	Use:   "reply <message-id> <content>",
	Short: "Reply in a message's thread",
	Long:  "Posts a comment into a message's thread, opening the thread when needed.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := app.NewApp(cmd)
		if err != nil {
			log.Fatalf("Error creating app: %v", err)
		}
		if err := threadsReplyLogic(a, cmd, args); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func threadsOpenLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	thread, err := a.SDK.CreateThread(cmd.Context(), messageID)
	if err != nil {
		return fmt.Errorf("opening thread: %w", err)
	}
	ui.DisplayThread(thread)
	return nil
}

func threadsGetLogic(a *app.App, cmd *cobra.Command, args []string) error {
	threadID, err := parseID(args[0], "thread ID")
	if err != nil {
		return err
	}
	thread, err := a.SDK.GetThread(cmd.Context(), threadID)
	if err != nil {
		return fmt.Errorf("getting thread: %w", err)
	}
	ui.DisplayThread(thread)
	return nil
}

func threadsReplyLogic(a *app.App, cmd *cobra.Command, args []string) error {
	messageID, err := parseID(args[0], "message ID")
	if err != nil {
		return err
	}
	msg, err := a.SDK.ReplyInThread(cmd.Context(), messageID, args[1])
	if err != nil {
		return fmt.Errorf("replying in thread: %w", err)
	}
	ui.Success(fmt.Sprintf("Replied with message %d in thread %d.", msg.ID, msg.EntityID))
	return nil
}

func init() {
	threadsCmd.AddCommand(threadsOpenCmd, threadsGetCmd, threadsReplyCmd)
	rootCmd.AddCommand(threadsCmd)
}
