package pachca

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const chatsPath = "chats"

// Chat availability filters.
const (
	AvailabilityMember = "is_member"
	AvailabilityPublic = "public"
)

// Sort directions accepted by the list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ChatListOptions filters and orders the chat list. The zero value asks
// for the token user's chats sorted by ID descending.
type ChatListOptions struct {
	// SortField is "id" or "last_message_at". Defaults to "id".
	SortField string
	// SortDirection is SortAsc or SortDesc. Defaults to SortDesc.
	SortDirection string
	// Availability is AvailabilityMember or AvailabilityPublic.
	// Defaults to AvailabilityMember.
	Availability string
	// LastMessageAfter and LastMessageBefore bound the chats by the
	// time of their latest message.
	LastMessageAfter  *time.Time
	LastMessageBefore *time.Time
	// Personal, when set, selects (or excludes) personal chats.
	Personal *bool
	// Limit is the page size, capped at 50 by the API. Defaults to
	// DefaultPageLimit.
	Limit int
}

func (o ChatListOptions) query() url.Values {
	sortField := o.SortField
	if sortField == "" {
		sortField = "id"
	}
	sortDirection := o.SortDirection
	if sortDirection == "" {
		sortDirection = SortDesc
	}
	availability := o.Availability
	if availability == "" {
		availability = AvailabilityMember
	}

	query := url.Values{}
	query.Set("sort["+sortField+"]", sortDirection)
	query.Set("availability", availability)
	if o.LastMessageAfter != nil {
		query.Set("last_message_at_after", o.LastMessageAfter.UTC().Format(time.RFC3339))
	}
	if o.LastMessageBefore != nil {
		query.Set("last_message_at_before", o.LastMessageBefore.UTC().Format(time.RFC3339))
	}
	if o.Personal != nil {
		query.Set("personal", strconv.FormatBool(*o.Personal))
	}
	return query
}

// GetChats lists every chat matching opts, following cursor pagination
// to the end of the data.
func (c *Client) GetChats(ctx context.Context, opts ChatListOptions) ([]Chat, error) {
	raw, err := c.collectAllPages(ctx, chatsPath, opts.query(), pagination{
		style: cursorPagination,
		limit: opts.Limit,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[Chat](raw, "chat")
}

// FindChats returns the chats whose name equals name exactly, searching
// both the public chats and the token user's chats. A chat visible in
// both scopes appears once.
func (c *Client) FindChats(ctx context.Context, name string) ([]Chat, error) {
	public, err := c.GetChats(ctx, ChatListOptions{Availability: AvailabilityPublic})
	if err != nil {
		return nil, err
	}
	member, err := c.GetChats(ctx, ChatListOptions{Availability: AvailabilityMember})
	if err != nil {
		return nil, err
	}

	var found []Chat
	seen := make(map[int64]bool)
	for _, chat := range append(public, member...) {
		if chat.Name == name && !seen[chat.ID] {
			seen[chat.ID] = true
			found = append(found, chat)
		}
	}
	return found, nil
}

// GetChat fetches one chat by ID.
func (c *Client) GetChat(ctx context.Context, chatID int64) (*Chat, error) {
	var chat Chat
	path := fmt.Sprintf("%s/%d", chatsPath, chatID)
	if err := c.getData(ctx, path, nil, &chat, "chat"); err != nil {
		return nil, err
	}
	return &chat, nil
}

// NewChat describes a chat to create.
type NewChat struct {
	Name        string  `json:"name"`
	MemberIDs   []int64 `json:"member_ids,omitempty"`
	GroupTagIDs []int64 `json:"group_tag_ids,omitempty"`
	// Channel makes the chat a read-only channel where only editors
	// post.
	Channel bool `json:"channel"`
	Public  bool `json:"public"`

	// FailIfExists makes creation fail with ErrChatAlreadyExists when a
	// chat with the same name is already visible. The check costs a
	// name search before the create call.
	FailIfExists bool `json:"-"`
}

// CreateChat creates a new chat or channel.
func (c *Client) CreateChat(ctx context.Context, chat NewChat) (*Chat, error) {
	if chat.FailIfExists {
		existing, err := c.FindChats(ctx, chat.Name)
		if err != nil {
			return nil, err
		}
		if n := len(existing); n > 0 {
			return nil, fmt.Errorf("%w: %d chats named %q found", ErrChatAlreadyExists, n, chat.Name)
		}
	}

	var created Chat
	payload := map[string]any{"chat": chat}
	if err := c.sendData(ctx, http.MethodPost, chatsPath, payload, &created, "create chat"); err != nil {
		return nil, err
	}
	return &created, nil
}

// ChatUpdate carries the mutable chat fields. An empty Name leaves the
// name alone; a nil Public leaves the access type alone.
type ChatUpdate struct {
	Name   string
	Public *bool

	// FailIfExists behaves as in NewChat, checked against the new name.
	FailIfExists bool
}

// UpdateChat renames a chat or changes its access type. An update with
// nothing to change fails with ErrNothingToUpdate before any API call.
func (c *Client) UpdateChat(ctx context.Context, chatID int64, update ChatUpdate) (*Chat, error) {
	if update.Name == "" && update.Public == nil {
		return nil, fmt.Errorf("%w: specify a name or an access type", ErrNothingToUpdate)
	}
	if update.FailIfExists && update.Name != "" {
		existing, err := c.FindChats(ctx, update.Name)
		if err != nil {
			return nil, err
		}
		if n := len(existing); n > 0 {
			return nil, fmt.Errorf("%w: %d chats named %q found", ErrChatAlreadyExists, n, update.Name)
		}
	}

	fields := map[string]any{}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.Public != nil {
		fields["public"] = *update.Public
	}

	var updated Chat
	path := fmt.Sprintf("%s/%d", chatsPath, chatID)
	payload := map[string]any{"chat": fields}
	if err := c.sendData(ctx, http.MethodPut, path, payload, &updated, "update chat"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ArchiveChat moves a chat to the archive. The response carries no body.
func (c *Client) ArchiveChat(ctx context.Context, chatID int64) error {
	path := fmt.Sprintf("%s/%d/archive", chatsPath, chatID)
	_, err := c.send(ctx, http.MethodPut, path, nil)
	return err
}

// UnarchiveChat restores an archived chat.
func (c *Client) UnarchiveChat(ctx context.Context, chatID int64) error {
	path := fmt.Sprintf("%s/%d/unarchive", chatsPath, chatID)
	_, err := c.send(ctx, http.MethodPut, path, nil)
	return err
}
