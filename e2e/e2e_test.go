// Package e2e contains end-to-end tests for the event site backend. They
// test from the rest interface all the way down to the provider wire format.
package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/frankokule97/brabant-events/favorites"
	"github.com/frankokule97/brabant-events/rest"
	"github.com/frankokule97/brabant-events/service"
	"github.com/frankokule97/brabant-events/ticketmaster"
)

// testNow is the fixed wall clock for every stub server: a Wednesday, so the
// weekend window resolves to the upcoming Saturday and Sunday.
var testNow = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

// stubServer starts an httptest.Server for the full REST stack, backed by a
// stub Discovery API upstream. Both servers are closed when the test ends.
func stubServer(t *testing.T) (*httptest.Server, *stubUpstream) {
	up := newStubUpstream(t)

	srv := &service.Service{
		Provider: &ticketmaster.Client{
			APIKey:  "test-key",
			BaseURL: up.srv.URL,
		},
		Favorites: favorites.NewMemStore(),
		Search: service.SearchDefaults{
			CountryCode: "NL",
			GeoPoint:    "u155s",
			Radius:      "80",
			Unit:        "km",
			PageSize:    20,
		},
		Time: stubTime(testNow),
	}

	ts := httptest.NewServer(rest.New(srv))
	t.Cleanup(ts.Close)

	return ts, up
}

// stubUpstream emulates the two Discovery API endpoints the backend calls.
// It records the query of the last search request so tests can assert on the
// window bounds the service sent.
type stubUpstream struct {
	srv *httptest.Server

	mu        sync.Mutex
	lastQuery url.Values
}

func newStubUpstream(t *testing.T) *stubUpstream {
	up := &stubUpstream{}

	m := http.NewServeMux()
	m.HandleFunc("/events.json", func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		up.lastQuery = r.URL.Query()
		up.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, searchBodyTmpl, stubJazz, stubMarket)
	})
	m.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/events/")
		id = strings.TrimSuffix(id, ".json")

		w.Header().Set("Content-Type", "application/json")
		body, ok := stubEvents[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, notFoundBody)
			return
		}
		fmt.Fprint(w, body)
	})

	up.srv = httptest.NewServer(m)
	t.Cleanup(up.srv.Close)

	return up
}

// LastQuery returns the query values of the most recent search request.
func (u *stubUpstream) LastQuery() url.Values {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastQuery
}

// stubTime mocks out the time with a fixed time.
type stubTime time.Time

func (s stubTime) Now() time.Time {
	return time.Time(s)
}

const searchBodyTmpl = `{
	"_embedded": {"events": [%s, %s]},
	"page": {"size": 20, "totalElements": 2, "totalPages": 1, "number": 0}
}`

const notFoundBody = `{
	"errors": [{
		"code": "DIS1004",
		"detail": "Resource not found with provided criteria",
		"status": "404"
	}]
}`

// stubJazz starts on Saturday evening, inside the upcoming weekend window.
const stubJazz = `{
	"id": "tm-1",
	"name": "Jazz at the Mill",
	"url": "https://tickets.example.com/tm-1",
	"dates": {
		"timezone": "Europe/Amsterdam",
		"start": {
			"dateTime": "2025-06-07T20:00:00Z",
			"localDate": "2025-06-07",
			"localTime": "22:00:00"
		}
	},
	"images": [
		{"url": "https://img.example.com/tm-1-small.jpg", "ratio": "4_3", "width": 305, "height": 225},
		{"url": "https://img.example.com/tm-1-wide.jpg", "ratio": "16_9", "width": 1024, "height": 576}
	],
	"classifications": [
		{"segment": {"name": "Music"}, "genre": {"name": "Jazz"}}
	],
	"_embedded": {
		"venues": [{"name": "De Melkfabriek", "city": {"name": "Tilburg"}}]
	}
}`

// stubMarket starts on the following Monday, outside the weekend window.
const stubMarket = `{
	"id": "tm-2",
	"name": "Monday Market",
	"url": "https://tickets.example.com/tm-2",
	"dates": {
		"timezone": "Europe/Amsterdam",
		"start": {"dateTime": "2025-06-09T10:00:00Z"}
	},
	"classifications": [
		{"segment": {"name": "Miscellaneous"}}
	],
	"_embedded": {
		"venues": [{"name": "Markt", "city": {"name": "Eindhoven"}}]
	}
}`

var stubEvents = map[string]string{
	"tm-1": stubJazz,
	"tm-2": stubMarket,
}
