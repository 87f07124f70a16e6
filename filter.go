package brabant

import (
	"strings"
)

// MatchesQuery reports whether the event matches a free-text search. The
// haystack is the title plus the optional city, venue and short description
// fields; matching is a case-insensitive substring test. An empty query
// matches everything.
func MatchesQuery(e Event, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	var hay []string
	for _, part := range []string{e.Title, e.City, e.VenueName, e.ShortDescription} {
		if part != "" {
			hay = append(hay, part)
		}
	}
	return strings.Contains(strings.ToLower(strings.Join(hay, " ")), query)
}

// MatchesCategory reports whether the event belongs to the given category.
// Comparison ignores case and surrounding whitespace. An empty category
// matches everything; events without a category only match the empty filter.
func MatchesCategory(e Event, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(e.Category), category)
}
