package pachca

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func membersPath(chatID int64) string {
	return fmt.Sprintf("%s/%d/members", chatsPath, chatID)
}

// AddMembers adds users to a chat. With silent set, no system message
// announces the newcomers.
func (c *Client) AddMembers(ctx context.Context, chatID int64, memberIDs []int64, silent bool) error {
	payload := map[string]any{
		"member_ids": memberIDs,
		"silent":     silent,
	}
	_, err := c.send(ctx, http.MethodPost, membersPath(chatID), payload)
	return err
}

// UpdateMemberRole changes a member's role in a chat. Valid roles are
// RoleMember, RoleAdmin and, for channels, RoleEditor.
func (c *Client) UpdateMemberRole(ctx context.Context, chatID, memberID int64, role string) error {
	payload := map[string]any{"role": role}
	path := fmt.Sprintf("%s/%d", membersPath(chatID), memberID)
	_, err := c.send(ctx, http.MethodPut, path, payload)
	return err
}

// RemoveMember removes a user from a chat.
func (c *Client) RemoveMember(ctx context.Context, chatID, memberID int64) error {
	path := fmt.Sprintf("%s/%d", membersPath(chatID), memberID)
	_, err := c.send(ctx, http.MethodDelete, path, nil)
	return err
}

// GetMembers lists a chat's members, optionally filtered by role
// (RoleAll for everyone), following cursor pagination to the end.
func (c *Client) GetMembers(ctx context.Context, chatID int64, role string) ([]Member, error) {
	if role == "" {
		role = RoleAll
	}
	query := url.Values{}
	query.Set("role", role)

	raw, err := c.collectAllPages(ctx, membersPath(chatID), query, pagination{
		style: cursorPagination,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[Member](raw, "member")
}

// GetMember looks up one member of a chat. It returns nil without error
// when the user is not a member. Membership has no direct lookup
// endpoint, so this scans the full member list.
func (c *Client) GetMember(ctx context.Context, chatID, memberID int64) (*Member, error) {
	members, err := c.GetMembers(ctx, chatID, RoleAll)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == memberID {
			return &members[i], nil
		}
	}
	return nil, nil
}
