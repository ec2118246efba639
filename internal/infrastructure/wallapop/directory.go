package wallapop

import (
	"context"
	"encoding/json"
	"net/url"
)

// FetchUser implements repository.DirectoryRepository. The payload is
// relayed as-is; user profiles are not normalized.
func (c *Client) FetchUser(ctx context.Context, userID string) (json.RawMessage, error) {
	body, err := c.fetchJSON(ctx, "/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// FetchCategories implements repository.DirectoryRepository.
func (c *Client) FetchCategories(ctx context.Context) (json.RawMessage, error) {
	body, err := c.fetchJSON(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
