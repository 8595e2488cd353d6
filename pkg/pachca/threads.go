package pachca

import (
	"context"
	"fmt"
	"net/http"
)

const threadsPath = "threads"

// CreateThread opens a comment thread on a message. Creating a thread
// twice for the same message returns the existing thread.
func (c *Client) CreateThread(ctx context.Context, messageID int64) (*Thread, error) {
	var thread Thread
	path := fmt.Sprintf("%s/%d/thread", messagesPath, messageID)
	if err := c.sendData(ctx, http.MethodPost, path, nil, &thread, "create thread"); err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetThread fetches one thread by ID.
func (c *Client) GetThread(ctx context.Context, threadID int64) (*Thread, error) {
	var thread Thread
	path := fmt.Sprintf("%s/%d", threadsPath, threadID)
	if err := c.getData(ctx, path, nil, &thread, "thread"); err != nil {
		return nil, err
	}
	return &thread, nil
}

// ReplyInThread posts a comment into a message's thread, creating the
// thread when it does not exist yet.
func (c *Client) ReplyInThread(ctx context.Context, messageID int64, content string, files ...*File) (*Message, error) {
	thread, err := c.CreateThread(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return c.CreateMessage(ctx, NewMessage{
		EntityID:   thread.ID,
		EntityType: EntityThread,
		Content:    content,
		Files:      files,
	})
}
