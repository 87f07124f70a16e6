package brabant

import (
	"time"
)

// WindowKind names a date-range computation rule for event listings.
type WindowKind string

const (
	// WindowNone bounds an otherwise-unbounded provider query with a fixed
	// forward horizon starting at "now".
	WindowNone WindowKind = "none"
	// WindowToday covers the whole of now's UTC calendar day.
	WindowToday WindowKind = "today"
	// WindowWeekend covers the next Saturday through the following Sunday.
	WindowWeekend WindowKind = "weekend"
	// WindowMonth covers the whole of now's UTC calendar month.
	WindowMonth WindowKind = "month"
)

// ParseWindowKind maps a query-string value to a WindowKind. Unknown values
// fall back to WindowNone so a mistyped filter degrades to the full listing.
func ParseWindowKind(s string) WindowKind {
	switch WindowKind(s) {
	case WindowToday, WindowWeekend, WindowMonth:
		return WindowKind(s)
	}
	return WindowNone
}

// DefaultHorizonMonths is the forward horizon applied to the default listing
// when no window is selected.
const DefaultHorizonMonths = 12

// HighlightsHorizonMonths is the shorter horizon used for the highlights
// subset on the landing page.
const HighlightsHorizonMonths = 3

// A TimeWindow is an inclusive pair of instants. It's computed fresh from
// "now" for every request and never outlives it.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWindow computes the window bounds for kind relative to now.
//
// All boundaries are computed on the UTC calendar so the same now always
// yields the same window no matter where the code runs. For WindowNone the
// horizon is DefaultHorizonMonths; use ResolveHorizon directly for other
// horizons.
func ResolveWindow(now time.Time, kind WindowKind) TimeWindow {
	now = now.UTC()

	switch kind {
	case WindowToday:
		start := startOfDay(now)
		return TimeWindow{Start: start, End: endOfDay(start)}

	case WindowWeekend:
		// Saturday of the current or upcoming weekend. A Sunday "now" rolls
		// forward to the next Saturday, 6 days out.
		day := startOfDay(now)
		untilSaturday := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
		saturday := day.AddDate(0, 0, untilSaturday)
		return TimeWindow{Start: saturday, End: endOfDay(saturday.AddDate(0, 0, 1))}

	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return TimeWindow{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	}

	return ResolveHorizon(now, DefaultHorizonMonths)
}

// ResolveHorizon computes a window from now to now plus a fixed number of
// calendar months.
func ResolveHorizon(now time.Time, months int) TimeWindow {
	now = now.UTC()
	return TimeWindow{Start: now, End: now.AddDate(0, months, 0)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

// InWindow reports whether the event's start instant falls inside w. Events
// whose start timestamp doesn't parse are never in any window; the normalizer
// rejects those before they get here.
func InWindow(e Event, w TimeWindow) bool {
	start, err := e.StartTime()
	if err != nil {
		return false
	}
	return w.Contains(start)
}
