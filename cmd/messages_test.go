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

func TestMessagesSendLogic(t *testing.T) {
	var sent pachca.NewMessage
	mockSDK := &MockSDK{
		CreateMessageFunc: func(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error) {
			sent = msg
			return &pachca.Message{ID: 900}, nil
		},
	}

	err := messagesSendLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"12", "hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), sent.EntityID)
	assert.Equal(t, pachca.EntityDiscussion, sent.EntityType)
	assert.Equal(t, "hello", sent.Content)
	assert.Nil(t, sent.ParentMessageID)
}

func TestMessagesSendLogicToUserWithReply(t *testing.T) {
	var sent pachca.NewMessage
	mockSDK := &MockSDK{
		CreateMessageFunc: func(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error) {
			sent = msg
			return &pachca.Message{ID: 901}, nil
		},
	}

	messagesSendToUser = true
	messagesSendParentID = 55
	defer func() {
		messagesSendToUser = false
		messagesSendParentID = 0
	}()

	err := messagesSendLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"3", "hi there"})
	require.NoError(t, err)
	assert.Equal(t, pachca.EntityUser, sent.EntityType)
	require.NotNil(t, sent.ParentMessageID)
	assert.Equal(t, int64(55), *sent.ParentMessageID)
}

func TestMessagesSendLogicMissingAttachment(t *testing.T) {
	messagesSendFiles = []string{"/does/not/exist.txt"}
	defer func() { messagesSendFiles = nil }()

	sendAttempted := false
	mockSDK := &MockSDK{
		CreateMessageFunc: func(ctx context.Context, msg pachca.NewMessage) (*pachca.Message, error) {
			sendAttempted = true
			return &pachca.Message{}, nil
		},
	}

	err := messagesSendLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"12", "hello"})
	assert.Error(t, err)
	assert.False(t, sendAttempted)
}

func TestMessagesEditLogic(t *testing.T) {
	var editedID int64
	var editedContent string
	mockSDK := &MockSDK{
		UpdateMessageFunc: func(ctx context.Context, messageID int64, content string) (*pachca.Message, error) {
			editedID = messageID
			editedContent = content
			return &pachca.Message{ID: messageID}, nil
		},
	}

	err := messagesEditLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"900", "edited"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), editedID)
	assert.Equal(t, "edited", editedContent)
}

func TestMessagesListLogic(t *testing.T) {
	var gotDirection string
	mockSDK := &MockSDK{
		GetMessagesFunc: func(ctx context.Context, chatID int64, sortDirection string) ([]pachca.Message, error) {
			gotDirection = sortDirection
			return []pachca.Message{{ID: 1}}, nil
		},
	}

	err := messagesListLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"12"})
	require.NoError(t, err)
	assert.Equal(t, pachca.SortDesc, gotDirection)

	messagesListAsc = true
	defer func() { messagesListAsc = false }()
	err = messagesListLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"12"})
	require.NoError(t, err)
	assert.Equal(t, pachca.SortAsc, gotDirection)
}

func TestMessagesPinUnpinDeleteLogic(t *testing.T) {
	var ops []string
	mockSDK := &MockSDK{
		PinMessageFunc: func(ctx context.Context, messageID int64) error {
			ops = append(ops, "pin")
			return nil
		},
		UnpinMessageFunc: func(ctx context.Context, messageID int64) error {
			ops = append(ops, "unpin")
			return nil
		},
		DeleteMessageFunc: func(ctx context.Context, messageID int64) error {
			ops = append(ops, "delete")
			return nil
		},
	}

	a := newTestApp(mockSDK)
	require.NoError(t, messagesPinLogic(a, &cobra.Command{}, []string{"900"}))
	require.NoError(t, messagesUnpinLogic(a, &cobra.Command{}, []string{"900"}))
	require.NoError(t, messagesDeleteLogic(a, &cobra.Command{}, []string{"900"}))
	assert.Equal(t, []string{"pin", "unpin", "delete"}, ops)
}

func TestMessagesDeleteLogicError(t *testing.T) {
	mockSDK := &MockSDK{
		DeleteMessageFunc: func(ctx context.Context, messageID int64) error {
			return errors.New("delete failed")
		},
	}

	err := messagesDeleteLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"900"})
	assert.Error(t, err)
}

func TestThreadsReplyLogic(t *testing.T) {
	var repliedTo int64
	mockSDK := &MockSDK{
		ReplyInThreadFunc: func(ctx context.Context, messageID int64, content string, files ...*pachca.File) (*pachca.Message, error) {
			repliedTo = messageID
			return &pachca.Message{ID: 903, EntityID: 44}, nil
		},
	}

	err := threadsReplyLogic(newTestApp(mockSDK), &cobra.Command{}, []string{"900", "follow-up"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), repliedTo)
}
