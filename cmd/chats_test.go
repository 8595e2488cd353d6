package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pachcadev/pachca-client/pkg/pachca"
)

func TestChatsListLogic(t *testing.T) {
	tests := []struct {
		name        string
		public      bool
		mockChats   []pachca.Chat
		mockError   error
		expectError bool
		wantScope   string
	}{
		{
			name:      "member chats by default",
			mockChats: []pachca.Chat{{ID: 1, Name: "ops"}},
			wantScope: "",
		},
		{
			name:      "public flag switches availability",
			public:    true,
			wantScope: pachca.AvailabilityPublic,
		},
		{
			name:        "listing error",
			mockError:   errors.New("listing failed"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotScope string
			mockSDK := &MockSDK{
				GetChatsFunc: func(ctx context.Context, opts pachca.ChatListOptions) ([]pachca.Chat, error) {
					gotScope = opts.Availability
					return tt.mockChats, tt.mockError
				},
			}

			chatsListPublic = tt.public
			defer func() { chatsListPublic = false }()

			err := chatsListLogic(newTestApp(mockSDK), &cobra.Command{}, nil)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScope, gotScope)
		})
	}
}

func TestChatsGetLogic(t *testing.T) {
	var requestedID int64
	mockSDK := &MockSDK{
		GetChatFunc: func(ctx context.Context, chatID int64) (*pachca.Chat, error) {
			requestedID = chatID
			return &pachca.Chat{ID: chatID, Name: "ops"}, nil
		},
	}

	err := chatsGetLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), requestedID)

	err = chatsGetLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"not-a-number"})
	assert.Error(t, err)
}

func TestChatsCreateLogic(t *testing.T) {
	var created pachca.NewChat
	mockSDK := &MockSDK{
		CreateChatFunc: func(ctx context.Context, chat pachca.NewChat) (*pachca.Chat, error) {
			created = chat
			return &pachca.Chat{ID: 77, Name: chat.Name}, nil
		},
	}

	chatsCreateMemberIDs = []int64{1, 2}
	chatsCreatePublic = true
	defer func() {
		chatsCreateMemberIDs = nil
		chatsCreatePublic = false
	}()

	err := chatsCreateLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"launch"})
	require.NoError(t, err)
	assert.Equal(t, "launch", created.Name)
	assert.Equal(t, []int64{1, 2}, created.MemberIDs)
	assert.True(t, created.Public)
}

func TestChatsUpdateLogic(t *testing.T) {
	var gotUpdate pachca.ChatUpdate
	mockSDK := &MockSDK{
		UpdateChatFunc: func(ctx context.Context, chatID int64, update pachca.ChatUpdate) (*pachca.Chat, error) {
			gotUpdate = update
			return &pachca.Chat{ID: chatID}, nil
		},
	}

	chatsRenameName = "renamed"
	chatsRenamePublic = "true"
	defer func() {
		chatsRenameName = ""
		chatsRenamePublic = ""
	}()

	err := chatsUpdateLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", gotUpdate.Name)
	require.NotNil(t, gotUpdate.Public)
	assert.True(t, *gotUpdate.Public)
}

func TestChatsUpdateLogicBadPublicValue(t *testing.T) {
	chatsRenamePublic = "maybe"
	defer func() { chatsRenamePublic = "" }()

	err := chatsUpdateLogic(newTestApp(&MockSDK{}), &cobra.Command{}, []string{"9"})
	assert.Error(t, err)
}

func TestChatsArchiveLogic(t *testing.T) {
	var archived, unarchived int64
	mockSDK := &MockSDK{
		ArchiveChatFunc: func(ctx context.Context, chatID int64) error {
			archived = chatID
			return nil
		},
		UnarchiveChatFunc: func(ctx context.Context, chatID int64) error {
			unarchived = chatID
			return nil
		},
	}

	require.NoError(t, chatsArchiveLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"4"}))
	require.NoError(t, chatsUnarchiveLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"4"}))
	assert.Equal(t, int64(4), archived)
	assert.Equal(t, int64(4), unarchived)
}
