package brabant

import (
	"time"
)

// EventID is a string assigned by the ticketing provider that uniquely
// identifies the Event. It doubles as the URL slug for event detail pages.
type EventID string

// Event is the canonical internal event representation. It's produced by the
// provider normalizer and consumed by rendering, filtering and calendar
// export.
//
// Only ID, Title and StartDateTime are guaranteed to be set. All other fields
// are optional: an empty string means the provider didn't supply the field,
// and consumers must treat it as absent (no image block, no booking action,
// and so on) rather than rendering an empty value.
type Event struct {
	ID    EventID `json:"id"`
	Title string  `json:"title"`

	// StartDateTime is an ISO-8601 timestamp. When the provider supplies a
	// combined absolute timestamp it carries a UTC or offset designator;
	// when it was assembled from a local date and time it has none, and is
	// interpreted as UTC throughout this service.
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime,omitempty"`

	// Timezone is the provider-reported IANA zone name. Informational only;
	// window math and calendar export always use UTC.
	Timezone string `json:"timezone,omitempty"`

	City      string `json:"city,omitempty"`
	VenueName string `json:"venueName,omitempty"`

	ImageURL   string `json:"imageUrl,omitempty"`
	BookingURL string `json:"bookingUrl,omitempty"`

	ShortDescription string `json:"shortDescription,omitempty"`
	Category         string `json:"category,omitempty"`
}

// isoLocal is the designator-less layout produced when the provider only has
// a local date and time for an event.
const isoLocal = "2006-01-02T15:04:05"

// StartTime parses StartDateTime into an absolute instant. Timestamps without
// a zone designator are pinned to UTC.
func (e Event) StartTime() (time.Time, error) {
	return ParseInstant(e.StartDateTime)
}

// EndTime parses EndDateTime. It returns the zero time without error when the
// event has no explicit end.
func (e Event) EndTime() (time.Time, error) {
	if e.EndDateTime == "" {
		return time.Time{}, nil
	}
	return ParseInstant(e.EndDateTime)
}

// ParseInstant parses an ISO-8601 timestamp as stored in Event.StartDateTime.
// Both the offset-carrying and the bare local forms are accepted; the local
// form resolves to UTC.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(isoLocal, s)
}

// EventSearchRequest selects a page of events from the provider, optionally
// restricted to a named date window and re-filtered by free text and
// category.
type EventSearchRequest struct {
	When     WindowKind `json:"when"`
	Query    string     `json:"q,omitempty"`
	Category string     `json:"category,omitempty"`

	// Page is the zero-based provider page index.
	Page int `json:"page"`
	// Size is the requested page size. Zero means the configured default.
	Size int `json:"size,omitempty"`
}

// PageInfo mirrors the provider's pagination block so clients can build
// pagers without knowing which provider is wired up.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// EventSearchReply is the result of an event search: the surviving normalized
// events plus the provider's pagination info.
type EventSearchReply struct {
	Events []Event  `json:"events"`
	Page   PageInfo `json:"page"`
}
