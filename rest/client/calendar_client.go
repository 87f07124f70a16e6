package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
)

// CalendarClient provides access to the /calendar endpoint.
type CalendarClient struct {
	client *Client
}

// Export downloads an event's iCalendar document. The raw document bytes are
// returned; calendar downloads are not JSON so this doesn't go through
// doJSON.
func (c *CalendarClient) Export(ctx context.Context, id brabant.EventID) ([]byte, error) {
	r, err := http.NewRequestWithContext(ctx, "GET", c.client.BaseURL+"/calendar/"+url.PathEscape(string(id)+".ics"), nil)
	if err != nil {
		return nil, err
	}

	w, err := c.client.HTTP.Do(r)
	if err != nil {
		return nil, err
	}
	defer w.Body.Close()

	if w.StatusCode != http.StatusOK {
		var resp errors.Response
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			return nil, err
		}
		return nil, resp.ToError()
	}

	return io.ReadAll(w.Body)
}
