package brabant

import (
	"testing"
	"time"

	"github.com/go-test/deep"
)

func TestResolveWindow(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		Name string
		Now  time.Time
		Kind WindowKind
		Want TimeWindow
	}{
		{
			Name: "today mid-afternoon",
			Now:  time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC),
			Kind: WindowToday,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 4, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			Name: "today exactly at midnight",
			Now:  time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
			Kind: WindowToday,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 4, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			// 2025-06-04 is a Wednesday, so Saturday is 3 days out.
			Name: "weekend from wednesday",
			Now:  time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC),
			Kind: WindowWeekend,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			// A Saturday "now" anchors to the start of the same day.
			Name: "weekend from saturday noon",
			Now:  time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC),
			Kind: WindowWeekend,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			// A Sunday "now" rolls forward to the next weekend, 6 days out,
			// even though Sunday is itself a weekend day.
			Name: "weekend from sunday",
			Now:  time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC),
			Kind: WindowWeekend,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			Name: "month from the first second",
			Now:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			Kind: WindowMonth,
			Want: TimeWindow{
				Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			Name: "month from the last second",
			Now:  time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
			Kind: WindowMonth,
			Want: TimeWindow{
				Start: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			Name: "leap-day month",
			Now:  time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC),
			Kind: WindowMonth,
			Want: TimeWindow{
				Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
			},
		},
		{
			Name: "none uses the default horizon",
			Now:  time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC),
			Kind: WindowNone,
			Want: TimeWindow{
				Start: time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC),
				End:   time.Date(2026, 6, 4, 15, 30, 0, 0, time.UTC),
			},
		},
	} {
		got := ResolveWindow(test.Now, test.Kind)
		if diff := deep.Equal(got, test.Want); diff != nil {
			t.Errorf("ResolveWindow (%s): %v", test.Name, diff)
		}
		if got.Start.After(got.End) {
			t.Errorf("ResolveWindow (%s): start %v after end %v", test.Name, got.Start, got.End)
		}
	}
}

func TestResolveWindowTodaySpansOneDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 11, 20, 7, 45, 12, 0, time.UTC)
	w := ResolveWindow(now, WindowToday)

	if !w.Contains(now) {
		t.Fatalf("today window %v..%v does not contain now %v", w.Start, w.End, now)
	}
	if got, want := w.End.Sub(w.Start), 24*time.Hour-time.Second; got != want {
		t.Fatalf("today window length = %v, want %v", got, want)
	}
}

func TestResolveHorizon(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)
	w := ResolveHorizon(now, HighlightsHorizonMonths)

	if !w.Start.Equal(now) {
		t.Fatalf("horizon start = %v, want %v", w.Start, now)
	}
	// Jan 31 + 3 months normalizes to May 1 (April has 30 days).
	want := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	if !w.End.Equal(want) {
		t.Fatalf("horizon end = %v, want %v", w.End, want)
	}
}

func TestWindowContainsIsInclusive(t *testing.T) {
	t.Parallel()

	w := TimeWindow{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, test := range []struct {
		Name string
		At   time.Time
		Want bool
	}{
		{"start boundary", w.Start, true},
		{"end boundary", w.End, true},
		{"just before start", w.Start.Add(-time.Second), false},
		{"just after end", w.End.Add(time.Second), false},
	} {
		if got := w.Contains(test.At); got != test.Want {
			t.Errorf("Contains (%s) = %v, want %v", test.Name, got, test.Want)
		}
	}
}

func TestInWindow(t *testing.T) {
	t.Parallel()

	w := ResolveWindow(time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC), WindowWeekend)

	inside := Event{ID: "1", Title: "Saturday Show", StartDateTime: "2025-06-07T20:00:00"}
	if !InWindow(inside, w) {
		t.Errorf("event starting %s not in weekend window", inside.StartDateTime)
	}

	outside := Event{ID: "2", Title: "Monday Show", StartDateTime: "2025-06-09T20:00:00Z"}
	if InWindow(outside, w) {
		t.Errorf("event starting %s unexpectedly in weekend window", outside.StartDateTime)
	}

	broken := Event{ID: "3", Title: "No clock", StartDateTime: "soon"}
	if InWindow(broken, w) {
		t.Error("event with unparseable start reported in window")
	}
}

func TestParseWindowKind(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]WindowKind{
		"today":   WindowToday,
		"weekend": WindowWeekend,
		"month":   WindowMonth,
		"":        WindowNone,
		"none":    WindowNone,
		"bogus":   WindowNone,
	} {
		if got := ParseWindowKind(s); got != want {
			t.Errorf("ParseWindowKind(%q) = %q, want %q", s, got, want)
		}
	}
}
