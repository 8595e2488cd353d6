// Package ui provides functions for formatting and printing Pachca data
// structures (chats, messages, members, user info) to the console in a
// user-friendly way. It also includes helpers for progress bars and
// standardized success/error messages.
package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/pachcadev/pachca-client/pkg/pachca"
)

// Success prints a simple success message to standard output.
func Success(msg string) {
	fmt.Println(msg)
}

// PrintSuccess prints a formatted success message to the console using
// the standard logger.
func PrintSuccess(msg string, args ...interface{}) {
	log.Printf("SUCCESS: "+msg, args...)
}

// PrintError prints a formatted error message to the console using the
// standard logger.
func PrintError(err error) {
	log.Printf("ERROR: %v", err)
}

// DisplayProfile prints information about the token's user.
func DisplayProfile(user *pachca.User) {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	fmt.Printf("Logged in as: %s (ID: %d)\n", name, user.ID)
	if user.Nickname != "" {
		fmt.Printf("  Nickname:   @%s\n", user.Nickname)
	}
	if user.Email != "" {
		fmt.Printf("  Email:      %s\n", user.Email)
	}
	if user.Department != "" {
		fmt.Printf("  Department: %s\n", user.Department)
	}
	if user.Bot {
		fmt.Println("  Bot token")
	}
}

// DisplayChats prints a table of chats, showing ID, name, and kind.
func DisplayChats(chats []pachca.Chat) {
	if len(chats) == 0 {
		fmt.Println("No chats found.")
		return
	}

	fmt.Printf("%-12s %-40s %-8s %s\n", "ID", "Name", "Kind", "Last Message")
	fmt.Println(strings.Repeat("-", 85))
	for _, chat := range chats {
		lastMessage := "-"
		if chat.LastMessageAt != nil {
			lastMessage = chat.LastMessageAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("%-12d %-40.40s %-8s %s\n", chat.ID, chat.Name, chatKind(chat), lastMessage)
	}
}

func chatKind(chat pachca.Chat) string {
	switch {
	case chat.Personal:
		return "personal"
	case chat.Channel:
		return "channel"
	default:
		return "chat"
	}
}

// DisplayChat prints detailed metadata for a single chat.
func DisplayChat(chat *pachca.Chat) {
	fmt.Println("Chat:")
	fmt.Printf("  ID:       %d\n", chat.ID)
	fmt.Printf("  Name:     %s\n", chat.Name)
	fmt.Printf("  Kind:     %s\n", chatKind(*chat))
	fmt.Printf("  Public:   %t\n", chat.Public)
	fmt.Printf("  Owner:    %d\n", chat.OwnerID)
	fmt.Printf("  Members:  %d\n", len(chat.MemberIDs))
	fmt.Printf("  Created:  %s\n", chat.CreatedAt.Local().Format(time.RFC1123))
}

// DisplayMembers prints a table of chat members.
func DisplayMembers(members []pachca.Member) {
	if len(members) == 0 {
		fmt.Println("No members found.")
		return
	}

	fmt.Printf("%-12s %-30s %-20s %s\n", "ID", "Name", "Nickname", "Role")
	fmt.Println(strings.Repeat("-", 75))
	for _, m := range members {
		name := strings.TrimSpace(m.FirstName + " " + m.LastName)
		fmt.Printf("%-12d %-30.30s %-20.20s %s\n", m.ID, name, m.Nickname, m.Role)
	}
}

// DisplayMessages prints a table of messages, oldest detail first in the
// order the caller provides.
func DisplayMessages(messages []pachca.Message) {
	if len(messages) == 0 {
		fmt.Println("No messages found.")
		return
	}

	fmt.Printf("%-12s %-18s %-10s %s\n", "ID", "Sent", "Author", "Content")
	fmt.Println(strings.Repeat("-", 90))
	for _, msg := range messages {
		content := strings.ReplaceAll(msg.Content, "\n", " ")
		fmt.Printf("%-12d %-18s %-10d %.45s\n", msg.ID, msg.CreatedAt.Local().Format("2006-01-02 15:04"), msg.UserID, content)
	}
}

// DisplayMessage prints detailed metadata for a single message.
func DisplayMessage(msg *pachca.Message) {
	fmt.Println("Message:")
	fmt.Printf("  ID:      %d\n", msg.ID)
	fmt.Printf("  Target:  %s %d\n", msg.EntityType, msg.EntityID)
	fmt.Printf("  Author:  %d\n", msg.UserID)
	fmt.Printf("  Sent:    %s\n", msg.CreatedAt.Local().Format(time.RFC1123))
	if msg.ParentMessageID != nil {
		fmt.Printf("  Reply to: %d\n", *msg.ParentMessageID)
	}
	if msg.Thread != nil {
		fmt.Printf("  Thread:  %d\n", msg.Thread.ID)
	}
	for _, file := range msg.Files {
		fmt.Printf("  File:    %s (%s)\n", file.Name, formatBytes(file.Size))
	}
	fmt.Printf("  Content: %s\n", msg.Content)
}

// DisplayThread prints detailed metadata for a thread.
func DisplayThread(thread *pachca.Thread) {
	fmt.Println("Thread:")
	fmt.Printf("  ID:            %d\n", thread.ID)
	fmt.Printf("  Chat:          %d\n", thread.ChatID)
	fmt.Printf("  Root message:  %d (chat %d)\n", thread.MessageID, thread.MessageChatID)
}

// formatBytes converts a size in bytes to a human-readable string using
// IEC units (KiB, MiB, GiB, etc.).
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// ProgressReader wraps r so that every byte read advances the bar.
func ProgressReader(r io.Reader, bar *progressbar.ProgressBar) io.Reader {
	return io.TeeReader(r, bar)
}

// NewProgressBar creates a progress bar configured for file transfers.
// maxBytes is the total size of the transfer in bytes; description is
// the text displayed next to the bar.
func NewProgressBar(maxBytes int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		maxBytes,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
