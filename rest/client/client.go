// Package client provides a typed client for the event site REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
)

// Client provides a client to the backend's REST API.
//
// Don't construct a Client directly. Use New() instead.
type Client struct {
	// HTTP is the underlying HTTP client used send requests.
	HTTP *http.Client
	// BaseURL is the HTTP endpoint for the REST API. Can be overridden for tests.
	BaseURL string
	// Device is the opaque per-browser identifier sent with favorites
	// requests. Leave empty for clients that never touch favorites.
	Device brabant.DeviceID

	Events    *EventsClient
	Calendar  *CalendarClient
	Favorites *FavoritesClient
}

// New constructs a new Client for the API at baseURL.
func New(baseURL string, device brabant.DeviceID) *Client {
	client := &Client{
		HTTP:    http.DefaultClient,
		BaseURL: baseURL,
		Device:  device,
	}

	client.Events = &EventsClient{client}
	client.Calendar = &CalendarClient{client}
	client.Favorites = &FavoritesClient{client}

	return client
}

func (c *Client) doJSON(ctx context.Context, method, path string, req interface{}, resp interface{}) error {
	var reqBody io.Reader
	if req != nil {
		reqJS, err := json.Marshal(req)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(reqJS)
	}

	r, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}

	if c.Device != "" {
		r.Header.Set("X-Device-ID", string(c.Device))
	}

	w, err := c.HTTP.Do(r)
	if err != nil {
		return err
	}
	defer w.Body.Close()

	if status := w.StatusCode; status != http.StatusOK {
		var resp errors.Response
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			return err
		}
		return resp.ToError()
	}

	if resp != nil {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			return err
		}
	}

	return nil
}
