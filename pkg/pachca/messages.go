package pachca

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const messagesPath = "messages"

// NewMessage describes a message to create. EntityID addresses the
// target according to EntityType: a chat ID for discussions, a user ID
// for direct messages, a thread ID for thread comments.
type NewMessage struct {
	EntityID   int64
	EntityType EntityType
	Content    string

	// ParentMessageID, when set, makes the message a reply.
	ParentMessageID *int64

	// DisplayName and DisplayAvatarURL override the author presentation.
	// Bot tokens only.
	DisplayName      string
	DisplayAvatarURL string

	// SkipInviteMentions suppresses auto-inviting mentioned users.
	// Only meaningful for thread messages; ignored otherwise.
	SkipInviteMentions bool

	// LinkPreview renders a preview of the first link in the content.
	LinkPreview bool

	// Files are attached to the message. Files not yet uploaded are
	// uploaded first; an upload failure aborts the whole operation and
	// no message is created.
	Files []*File
}

// CreateMessage posts a message to a chat, a user, or a thread,
// uploading any pending file attachments first.
func (c *Client) CreateMessage(ctx context.Context, msg NewMessage) (*Message, error) {
	entityType := msg.EntityType
	if entityType == "" {
		entityType = EntityDiscussion
	}

	message := map[string]any{
		"entity_id":   msg.EntityID,
		"entity_type": entityType,
		"content":     msg.Content,
	}
	if msg.ParentMessageID != nil {
		message["parent_message_id"] = *msg.ParentMessageID
	}
	if msg.DisplayName != "" {
		message["display_name"] = msg.DisplayName
	}
	if msg.DisplayAvatarURL != "" {
		message["display_avatar_url"] = msg.DisplayAvatarURL
	}
	if entityType == EntityThread {
		message["skip_invite_mentions"] = msg.SkipInviteMentions
	}

	if len(msg.Files) > 0 {
		if err := c.uploadAll(ctx, msg.Files); err != nil {
			return nil, err
		}
		attachments := make([]Attachment, 0, len(msg.Files))
		for _, f := range msg.Files {
			attachments = append(attachments, f.Attachment())
		}
		message["files"] = attachments
	}

	var created Message
	payload := map[string]any{
		"message":      message,
		"link_preview": msg.LinkPreview,
	}
	if err := c.sendData(ctx, http.MethodPost, messagesPath, payload, &created, "create message"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMessage replaces a message's content.
func (c *Client) UpdateMessage(ctx context.Context, messageID int64, content string) (*Message, error) {
	var updated Message
	path := fmt.Sprintf("%s/%d", messagesPath, messageID)
	payload := map[string]any{
		"message": map[string]any{"content": content},
	}
	if err := c.sendData(ctx, http.MethodPut, path, payload, &updated, "update message"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetMessages lists every message of a chat, newest first unless
// sortDirection says otherwise (SortAsc or SortDesc, empty for the
// default). The endpoint uses page-number pagination.
func (c *Client) GetMessages(ctx context.Context, chatID int64, sortDirection string) ([]Message, error) {
	if sortDirection == "" {
		sortDirection = SortDesc
	}
	query := url.Values{}
	query.Set("chat_id", fmt.Sprintf("%d", chatID))
	query.Set("sort[id]", sortDirection)

	raw, err := c.collectAllPages(ctx, messagesPath, query, pagination{
		style: pagePagination,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[Message](raw, "message")
}

// GetMessage fetches one message by ID.
func (c *Client) GetMessage(ctx context.Context, messageID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("%s/%d", messagesPath, messageID)
	if err := c.getData(ctx, path, nil, &msg, "message"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// PinMessage pins a message in its chat.
func (c *Client) PinMessage(ctx context.Context, messageID int64) error {
	path := fmt.Sprintf("%s/%d/pin", messagesPath, messageID)
	_, err := c.send(ctx, http.MethodPost, path, nil)
	return err
}

// UnpinMessage removes a message from its chat's pinned list.
func (c *Client) UnpinMessage(ctx context.Context, messageID int64) error {
	path := fmt.Sprintf("%s/%d/pin", messagesPath, messageID)
	_, err := c.send(ctx, http.MethodDelete, path, nil)
	return err
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, messageID int64) error {
	path := fmt.Sprintf("%s/%d", messagesPath, messageID)
	_, err := c.send(ctx, http.MethodDelete, path, nil)
	return err
}
