package app

import (
	"context"
	"io"

	"github.com/pachcadev/pachca-client/pkg/pachca"
)

// SDK defines the interface for interacting with the Pachca API.
// This allows for mocking in command tests.
type SDK interface {
	GetProfile(ctx context.Context) (*pachca.User, error)
	GetUserID(ctx context.Context) (int64, error)

	GetChats(ctx context.Context, opts pachca.ChatListOptions) ([]pachca.Chat, error)
	FindChats(ctx context.Context, name string) ([]pachca.Chat, error)
	GetChat(ctx context.Context, chatID int64) (*pachca.Chat, error)
	CreateChat(ctx context.Context, chat pachca.NewChat) (*pachca.Chat, error)
	UpdateChat(ctx context.Context, chatID int64, update pachca.ChatUpdate) (*pachca.Chat, error)
	ArchiveChat(ctx context.Context, chatID int64) error
	UnarchiveChat(ctx context.Context, chatID int64) error

	AddMembers(ctx context.Context, chatID int64, memberIDs []int64, silent bool) error
	UpdateMemberRole(ctx context.Context, chatID, memberID int64, role string) error
	RemoveMember(ctx context.Context, chatID, memberID int64) error
	GetMembers(ctx context.Context, chatID int64, role string) ([]pachca.Member, error)
	GetMember(ctx context.Context, chatID, memberID int64) (*pachca.Member, error)

	CreateMessage(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error)
	UpdateMessage(ctx context.Context, messageID int64, content string) (*pachca.Message, error)
	GetMessages(ctx context.Context, chatID int64, sortDirection string) ([]pachca.Message, error)
	GetMessage(ctx context.Context, messageID int64) (*pachca.Message, error)
	PinMessage(ctx context.Context, messageID int64) error
	UnpinMessage(ctx context.Context, messageID int64) error
	DeleteMessage(ctx context.Context, messageID int64) error

	CreateThread(ctx context.Context, messageID int64) (*pachca.Thread, error)
	GetThread(ctx context.Context, threadID int64) (*pachca.Thread, error)
	ReplyInThread(ctx context.Context, messageID int64, content string, files ...*pachca.File) (*pachca.Message, error)

	UploadFile(ctx context.Context, f *pachca.File) error
	UploadFileFrom(ctx context.Context, f *pachca.File, content io.Reader) error
}

var _ SDK = (*pachca.Client)(nil)
