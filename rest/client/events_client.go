package client

import (
	"context"
	"net/url"
	"strconv"

	brabant "github.com/frankokule97/brabant-events"
)

// EventsClient provides access to the /events endpoint.
type EventsClient struct {
	client *Client
}

// Search fetches a filtered page of events.
func (c *EventsClient) Search(ctx context.Context, req brabant.EventSearchRequest) (brabant.EventSearchReply, error) {
	q := url.Values{}
	if req.When != "" && req.When != brabant.WindowNone {
		q.Set("when", string(req.When))
	}
	if req.Query != "" {
		q.Set("q", req.Query)
	}
	if req.Category != "" {
		q.Set("cat", req.Category)
	}
	if req.Page > 0 {
		q.Set("page", strconv.Itoa(req.Page))
	}
	if req.Size > 0 {
		q.Set("size", strconv.Itoa(req.Size))
	}

	path := "/events/"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp brabant.EventSearchReply
	if err := c.client.doJSON(ctx, "GET", path, nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Highlights fetches the short-horizon teaser listing.
func (c *EventsClient) Highlights(ctx context.Context) (brabant.EventSearchReply, error) {
	var resp brabant.EventSearchReply
	if err := c.client.doJSON(ctx, "GET", "/events/highlights", nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// Get fetches one event by its id.
func (c *EventsClient) Get(ctx context.Context, id brabant.EventID) (brabant.Event, error) {
	var resp brabant.Event
	if err := c.client.doJSON(ctx, "GET", "/events/"+url.PathEscape(string(id)), nil, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}
