package cmd

import (
	"context"
	"io"

	"github.com/pachcadev/pachca-client/internal/app"
	"github.com/pachcadev/pachca-client/internal/config"
	"github.com/pachcadev/pachca-client/internal/logger"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

// MockSDK implements app.SDK for command logic tests. Each method
// delegates to an optional func field; unset fields return zero values.
type MockSDK struct {
	GetProfileFunc       func(ctx context.Context) (*pachca.User, error)
	GetUserIDFunc        func(ctx context.Context) (int64, error)
	GetChatsFunc         func(ctx context.Context, opts pachca.ChatListOptions) ([]pachca.Chat, error)
	FindChatsFunc        func(ctx context.Context, name string) ([]pachca.Chat, error)
	GetChatFunc          func(ctx context.Context, chatID int64) (*pachca.Chat, error)
	CreateChatFunc       func(ctx context.Context, chat pachca.NewChat) (*pachca.Chat, error)
	UpdateChatFunc       func(ctx context.Context, chatID int64, update pachca.ChatUpdate) (*pachca.Chat, error)
	ArchiveChatFunc      func(ctx context.Context, chatID int64) error
	UnarchiveChatFunc    func(ctx context.Context, chatID int64) error
	AddMembersFunc       func(ctx context.Context, chatID int64, memberIDs []int64, silent bool) error
	UpdateMemberRoleFunc func(ctx context.Context, chatID, memberID int64, role string) error
	RemoveMemberFunc     func(ctx context.Context, chatID, memberID int64) error
	GetMembersFunc       func(ctx context.Context, chatID int64, role string) ([]pachca.Member, error)
	GetMemberFunc        func(ctx context.Context, chatID, memberID int64) (*pachca.Member, error)
	CreateMessageFunc    func(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error)
	UpdateMessageFunc    func(ctx context.Context, messageID int64, content string) (*pachca.Message, error)
	GetMessagesFunc      func(ctx context.Context, chatID int64, sortDirection string) ([]pachca.Message, error)
	GetMessageFunc       func(ctx context.Context, messageID int64) (*pachca.Message, error)
	PinMessageFunc       func(ctx context.Context, messageID int64) error
	UnpinMessageFunc     func(ctx context.Context, messageID int64) error
	DeleteMessageFunc    func(ctx context.Context, messageID int64) error
	CreateThreadFunc     func(ctx context.Context, messageID int64) (*pachca.Thread, error)
	GetThreadFunc        func(ctx context.Context, threadID int64) (*pachca.Thread, error)
	ReplyInThreadFunc    func(ctx context.Context, messageID int64, content string, files ...*pachca.File) (*pachca.Message, error)
	UploadFileFunc       func(ctx context.Context, f *pachca.File) error
	UploadFileFromFunc   func(ctx context.Context, f *pachca.File, content io.Reader) error
}

var _ app.SDK = (*MockSDK)(nil)

func (m *MockSDK) GetProfile(ctx context.Context) (*pachca.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx)
	}
	return &pachca.User{}, nil
}

func (m *MockSDK) GetUserID(ctx context.Context) (int64, error) {
	if m.GetUserIDFunc != nil {
		return m.GetUserIDFunc(ctx)
	}
	return 0, nil
}

func (m *MockSDK) GetChats(ctx context.Context, opts pachca.ChatListOptions) ([]pachca.Chat, error) {
	if m.GetChatsFunc != nil {
		return m.GetChatsFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockSDK) FindChats(ctx context.Context, name string) ([]pachca.Chat, error) {
	if m.FindChatsFunc != nil {
		return m.FindChatsFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockSDK) GetChat(ctx context.Context, chatID int64) (*pachca.Chat, error) {
	if m.GetChatFunc != nil {
		return m.GetChatFunc(ctx, chatID)
	}
	return &pachca.Chat{}, nil
}

func (m *MockSDK) CreateChat(ctx context.Context, chat pachca.NewChat) (*pachca.Chat, error) {
	if m.CreateChatFunc != nil {
		return m.CreateChatFunc(ctx, chat)
	}
	return &pachca.Chat{}, nil
}

func (m *MockSDK) UpdateChat(ctx context.Context, chatID int64, update pachca.ChatUpdate) (*pachca.Chat, error) {
	if m.UpdateChatFunc != nil {
		return m.UpdateChatFunc(ctx, chatID, update)
	}
	return &pachca.Chat{}, nil
}

func (m *MockSDK) ArchiveChat(ctx context.Context, chatID int64) error {
	if m.ArchiveChatFunc != nil {
		return m.ArchiveChatFunc(ctx, chatID)
	}
	return nil
}

func (m *MockSDK) UnarchiveChat(ctx context.Context, chatID int64) error {
	if m.UnarchiveChatFunc != nil {
		return m.UnarchiveChatFunc(ctx, chatID)
	}
	return nil
}

func (m *MockSDK) AddMembers(ctx context.Context, chatID int64, memberIDs []int64, silent bool) error {
	if m.AddMembersFunc != nil {
		return m.AddMembersFunc(ctx, chatID, memberIDs, silent)
	}
	return nil
}

func (m *MockSDK) UpdateMemberRole(ctx context.Context, chatID, memberID int64, role string) error {
	if m.UpdateMemberRoleFunc != nil {
		return m.UpdateMemberRoleFunc(ctx, chatID, memberID, role)
	}
	return nil
}

func (m *MockSDK) RemoveMember(ctx context.Context, chatID, memberID int64) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, chatID, memberID)
	}
	return nil
}

func (m *MockSDK) GetMembers(ctx context.Context, chatID int64, role string) ([]pachca.Member, error) {
	if m.GetMembersFunc != nil {
		return m.GetMembersFunc(ctx, chatID, role)
	}
	return nil, nil
}

func (m *MockSDK) GetMember(ctx context.Context, chatID, memberID int64) (*pachca.Member, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, chatID, memberID)
	}
	return nil, nil
}

func (m *MockSDK) CreateMessage(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error) {
	if m.CreateMessageFunc != nil {
		return m.CreateMessageFunc(ctx, msg)
	}
	return &pachca.Message{}, nil
}

func (m *MockSDK) UpdateMessage(ctx context.Context, messageID int64, content string) (*pachca.Message, error) {
	if m.UpdateMessageFunc != nil {
		return m.UpdateMessageFunc(ctx, messageID, content)
	}
	return &pachca.Message{}, nil
}

func (m *MockSDK) GetMessages(ctx context.Context, chatID int64, sortDirection string) ([]pachca.Message, error) {
	if m.GetMessagesFunc != nil {
		return m.GetMessagesFunc(ctx, chatID, sortDirection)
	}
	return nil, nil
}

func (m *MockSDK) GetMessage(ctx context.Context, messageID int64) (*pachca.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(ctx, messageID)
	}
	return &pachca.Message{}, nil
}

func (m *MockSDK) PinMessage(ctx context.Context, messageID int64) error {
	if m.PinMessageFunc != nil {
		return m.PinMessageFunc(ctx, messageID)
	}
	return nil
}

func (m *MockSDK) UnpinMessage(ctx context.Context, messageID int64) error {
	if m.UnpinMessageFunc != nil {
		return m.UnpinMessageFunc(ctx, messageID)
	}
	return nil
}

func (m *MockSDK) DeleteMessage(ctx context.Context, messageID int64) error {
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(ctx, messageID)
	}
	return nil
}

func (m *MockSDK) CreateThread(ctx context.Context, messageID int64) (*pachca.Thread, error) {
	if m.CreateThreadFunc != nil {
		return m.CreateThreadFunc(ctx, messageID)
	}
	return &pachca.Thread{}, nil
}

func (m *MockSDK) GetThread(ctx context.Context, threadID int64) (*pachca.Thread, error) {
	if m.GetThreadFunc != nil {
		return m.GetThreadFunc(ctx, threadID)
	}
	return &pachca.Thread{}, nil
}

func (m *MockSDK) ReplyInThread(ctx context.Context, messageID int64, content string, files ...*pachca.File) (*pachca.Message, error) {
	if m.ReplyInThreadFunc != nil {
		return m.ReplyInThreadFunc(ctx, messageID, content, files...)
	}
	return &pachca.Message{}, nil
}

func (m *MockSDK) UploadFile(ctx context.Context, f *pachca.File) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, f)
	}
	return nil
}

func (m *MockSDK) UploadFileFrom(ctx context.Context, f *pachca.File, content io.Reader) error {
	if m.UploadFileFromFunc != nil {
		return m.UploadFileFromFunc(ctx, f, content)
	}
	return nil
}

// newTestApp builds an App around a mock SDK for logic tests.
func newTestApp(sdk app.SDK) *app.App {
	return &app.App{
		Config: &config.Configuration{AccessToken: "test-token"},
		Logger: logger.NoopLogger{},
		SDK:    sdk,
	}
}
