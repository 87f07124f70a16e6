package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/frankokule97/brabant-events/log"
)

// DefaultBaseURL is the production Discovery API endpoint.
const DefaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Client is a slimmed-down Ticketmaster Discovery API client. It only covers
// the two calls the service needs: a paged event search and a single-event
// fetch.
type Client struct {
	HTTP   *http.Client
	APIKey string
	// BaseURL is the Discovery API endpoint. Can be overridden for tests.
	// It defaults to DefaultBaseURL.
	BaseURL string
}

// SearchParams are the query parameters for a Discovery event search. Zero
// values are omitted from the request so the API's own defaults apply.
type SearchParams struct {
	CountryCode string
	GeoPoint    string
	Radius      string
	Unit        string
	Sort        string

	// Start and End bound the search window. They're sent in the API's
	// whole-second UTC format; see FormatDateTime.
	Start time.Time
	End   time.Time

	Size int
	Page int
}

// FormatDateTime renders an instant the way the Discovery API expects:
// ISO-8601 UTC truncated to whole seconds. The API rejects timestamps with a
// millisecond fraction.
func FormatDateTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}

// SearchEvents fetches one page of raw events matching params.
func (c *Client) SearchEvents(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("apikey", c.APIKey)
	if params.CountryCode != "" {
		q.Set("countryCode", params.CountryCode)
	}
	if params.GeoPoint != "" {
		q.Set("geoPoint", params.GeoPoint)
	}
	if params.Radius != "" {
		q.Set("radius", params.Radius)
	}
	if params.Unit != "" {
		q.Set("unit", params.Unit)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if !params.Start.IsZero() {
		q.Set("startDateTime", FormatDateTime(params.Start))
	}
	if !params.End.IsZero() {
		q.Set("endDateTime", FormatDateTime(params.End))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	var resp SearchResponse
	if err := c.getJSON(ctx, "/events.json?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEvent fetches a single raw event by its provider ID. A deleted or
// unknown id yields an Error for which IsNotFound returns true.
func (c *Client) GetEvent(ctx context.Context, id string) (json.RawMessage, error) {
	path := fmt.Sprintf("/events/%s.json?apikey=%s", url.PathEscape(id), url.QueryEscape(c.APIKey))

	var raw json.RawMessage
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	logger := log.FromContext(ctx)

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, "GET", base+path, nil)
	if err != nil {
		return err
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tmErr := parseError(resp.StatusCode, resp.Body)
		logger.Warn("ticketmaster request failed",
			zap.Int("status", tmErr.Status),
			zap.String("code", tmErr.Code),
			zap.String("error", tmErr.Message))
		return tmErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
