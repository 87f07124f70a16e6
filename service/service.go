// Package service implements the event-discovery operations behind the REST
// API: provider search and normalization, single-event lookup with caching,
// calendar export and per-device favorites.
package service

import (
	"context"
	"encoding/json"
	"time"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/pg"
	"github.com/frankokule97/brabant-events/ticketmaster"
)

// Time mocks out time.Now for testing
type Time interface {
	Now() time.Time
}

// SystemTime is the Time implementation used outside of tests.
type SystemTime struct{}

// Now returns the current wall-clock time.
func (SystemTime) Now() time.Time { return time.Now() }

// Provider mocks out access to the ticketing provider's API.
type Provider interface {
	SearchEvents(ctx context.Context, params ticketmaster.SearchParams) (*ticketmaster.SearchResponse, error)
	GetEvent(ctx context.Context, id string) (json.RawMessage, error)
}

// SearchDefaults are the provider query parameters that scope every listing
// to the site's region.
type SearchDefaults struct {
	CountryCode string
	GeoPoint    string
	Radius      string
	Unit        string
	PageSize    int
}

// Service is a programmatic API for the event site backend. It composes the
// window resolver, the provider normalizer and the calendar encoder, and
// manages access to the fetch cache and the favorites store.
type Service struct {
	Provider Provider

	// Cache memoizes single-event provider fetches. Optional; a nil cache
	// means every lookup goes upstream.
	Cache    *pg.EventCache
	CacheTTL time.Duration

	Favorites brabant.FavoriteStore

	Search SearchDefaults

	Time Time

	// RetryBackoff is the base unit for the exponential backoff between
	// provider retries. Tests set it to zero.
	RetryBackoff time.Duration
}

func (s *Service) now() time.Time {
	if s.Time == nil {
		return time.Now()
	}
	return s.Time.Now()
}

func (s *Service) pageSize(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.Search.PageSize > 0 {
		return s.Search.PageSize
	}
	return 20
}
