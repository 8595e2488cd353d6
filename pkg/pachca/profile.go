package pachca

import "context"

// GetProfile returns the user the access token belongs to.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var user User
	if err := c.getData(ctx, "profile", nil, &user, "profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserID returns the token owner's user ID. Useful as a cheap
// token-validity probe.
func (c *Client) GetUserID(ctx context.Context) (int64, error) {
	user, err := c.GetProfile(ctx)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
