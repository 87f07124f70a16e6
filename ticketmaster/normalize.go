package ticketmaster

import (
	"sort"
	"strings"

	brabant "github.com/frankokule97/brabant-events"
)

// shortDescSeparator joins the genre/segment half and the venue/city half of
// a derived short description.
const shortDescSeparator = " • "

// Normalize converts one raw provider record into the canonical Event shape.
//
// It returns nil when the record is unusable: no id or title after trimming,
// no start time in either the combined or the local-date/local-time form, or
// a start time that doesn't parse to an instant. A nil result is an expected
// outcome, not a fault; callers drop nils from batch output.
func Normalize(raw Event) *brabant.Event {
	id := strings.TrimSpace(raw.ID)
	title := strings.TrimSpace(raw.Name)
	start := startDateTime(raw)

	if id == "" || title == "" || start == "" {
		return nil
	}
	if _, err := brabant.ParseInstant(start); err != nil {
		return nil
	}

	event := &brabant.Event{
		ID:            brabant.EventID(id),
		Title:         title,
		StartDateTime: start,
		EndDateTime:   endDateTime(raw),
		Timezone:      raw.Dates.Timezone,
		ImageURL:      pickBestImageURL(raw.Images),
		BookingURL:    strings.TrimSpace(raw.URL),
	}

	if len(raw.Embedded.Venues) > 0 {
		venue := raw.Embedded.Venues[0]
		event.VenueName = strings.TrimSpace(venue.Name)
		event.City = strings.TrimSpace(venue.City.Name)
	}

	var segment, genre string
	if len(raw.Classifications) > 0 {
		segment = strings.TrimSpace(raw.Classifications[0].Segment.Name)
		genre = strings.TrimSpace(raw.Classifications[0].Genre.Name)
	}
	event.Category = segment
	event.ShortDescription = shortDescription(genre, segment, event.VenueName, event.City)

	return event
}

// startDateTime prefers the provider's combined absolute timestamp and falls
// back to concatenating the local date and time. No timezone offset is ever
// invented for the local form.
func startDateTime(raw Event) string {
	if dt := raw.Dates.Start.DateTime; dt != "" {
		return dt
	}
	if raw.Dates.Start.LocalDate != "" && raw.Dates.Start.LocalTime != "" {
		return raw.Dates.Start.LocalDate + "T" + raw.Dates.Start.LocalTime
	}
	return ""
}

func endDateTime(raw Event) string {
	if dt := raw.Dates.End.DateTime; dt != "" {
		return dt
	}
	if raw.Dates.End.LocalDate != "" && raw.Dates.End.LocalTime != "" {
		return raw.Dates.End.LocalDate + "T" + raw.Dates.End.LocalTime
	}
	return ""
}

// pickBestImageURL selects a representative image: the first 16:9 candidate
// at least 1000px wide, else the widest candidate of any shape. Candidates
// are ordered by descending width with the URL as a tie-break, so the choice
// is the same for any permutation of the input list.
func pickBestImageURL(images []Image) string {
	var candidates []Image
	for _, img := range images {
		if img.URL != "" {
			candidates = append(candidates, img)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Width != candidates[j].Width {
			return candidates[i].Width > candidates[j].Width
		}
		return candidates[i].URL < candidates[j].URL
	})

	for _, img := range candidates {
		if img.Ratio == "16_9" && img.Width >= 1000 {
			return img.URL
		}
	}
	return candidates[0].URL
}

// shortDescription derives a summary line for providers that have no native
// one: a genre-or-segment label joined with a venue-or-city label. When both
// halves are absent the description is omitted entirely.
func shortDescription(genre, segment, venueName, city string) string {
	var parts []string
	if label := firstNonEmpty(genre, segment); label != "" {
		parts = append(parts, label)
	}
	if place := firstNonEmpty(venueName, city); place != "" {
		parts = append(parts, place)
	}
	return strings.Join(parts, shortDescSeparator)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
