// Package ics serializes canonical events into RFC 5545 iCalendar documents
// for "add to calendar" downloads. The output format is part of the service's
// interoperability contract with third-party calendar clients, so timestamp
// formatting and text escaping here must stay byte-exact.
package ics

import (
	"strings"
	"time"

	brabant "github.com/frankokule97/brabant-events"
)

// uidSuffix makes exported UIDs globally unique and stable: repeated exports
// of the same event differ only in their DTSTAMP.
const uidSuffix = "@brabantevents"

// defaultDuration is assumed for events the provider gives no end time for.
const defaultDuration = 2 * time.Hour

// Encode renders a single-event iCalendar document. now becomes the DTSTAMP.
//
// The encoder assumes the event was already resolved and validated; it only
// fails when the event's start timestamp doesn't parse, which a normalized
// event never hits.
func Encode(e brabant.Event, now time.Time) ([]byte, error) {
	start, err := e.StartTime()
	if err != nil {
		return nil, err
	}

	end, err := e.EndTime()
	if err != nil || end.IsZero() {
		end = start.Add(defaultDuration)
	}

	title := e.Title
	if title == "" {
		title = "Event"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//BrabantEvents//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + string(e.ID) + uidSuffix,
		"DTSTAMP:" + formatUTC(now),
		"DTSTART:" + formatUTC(start),
		"DTEND:" + formatUTC(end),
		"SUMMARY:" + escapeText(title),
	}
	if e.ShortDescription != "" {
		lines = append(lines, "DESCRIPTION:"+escapeText(e.ShortDescription))
	}
	if loc := location(e); loc != "" {
		lines = append(lines, "LOCATION:"+escapeText(loc))
	}
	if e.BookingURL != "" {
		lines = append(lines, "URL:"+escapeText(e.BookingURL))
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	// RFC 5545 prescribes CRLF line terminators, including after the final
	// line.
	return []byte(strings.Join(lines, "\r\n") + "\r\n"), nil
}

// formatUTC renders an instant in the compact UTC form 20060102T150405Z.
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

var textEscaper = strings.NewReplacer(
	// Backslash first so the escapes below never get double-escaped.
	`\`, `\\`,
	"\n", `\n`,
	`,`, `\,`,
	`;`, `\;`,
)

// escapeText applies RFC 5545 TEXT escaping to a free-text property value.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func location(e brabant.Event) string {
	var parts []string
	if e.VenueName != "" {
		parts = append(parts, e.VenueName)
	}
	if e.City != "" {
		parts = append(parts, e.City)
	}
	return strings.Join(parts, ", ")
}
