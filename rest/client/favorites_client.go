package client

import (
	"context"
	"net/url"

	brabant "github.com/frankokule97/brabant-events"
)

// FavoritesClient provides access to the /favorites endpoint. The Client's
// Device identifies whose favorite set is touched.
type FavoritesClient struct {
	client *Client
}

// List fetches the device's favorite event IDs.
func (c *FavoritesClient) List(ctx context.Context) ([]brabant.EventID, error) {
	var resp []brabant.EventID
	if err := c.client.doJSON(ctx, "GET", "/favorites/", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Toggle flips an event's favorite state and returns the new membership.
func (c *FavoritesClient) Toggle(ctx context.Context, id brabant.EventID) (bool, error) {
	var resp struct {
		ID       brabant.EventID `json:"id"`
		Favorite bool            `json:"favorite"`
	}
	if err := c.client.doJSON(ctx, "POST", "/favorites/"+url.PathEscape(string(id)), nil, &resp); err != nil {
		return false, err
	}
	return resp.Favorite, nil
}
