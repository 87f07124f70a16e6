package brabant

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		In      string
		Want    time.Time
		WantErr bool
	}{
		{In: "2025-06-01T18:00:00Z", Want: time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)},
		{In: "2025-06-01T20:00:00+02:00", Want: time.Date(2025, 6, 1, 20, 0, 0, 0, time.FixedZone("", 2*3600))},
		// The local form produced from a provider's localDate + localTime
		// pair resolves to UTC.
		{In: "2025-06-01T20:00:00", Want: time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)},
		{In: "2025-06-01", WantErr: true},
		{In: "", WantErr: true},
	} {
		got, err := ParseInstant(test.In)
		if test.WantErr {
			if err == nil {
				t.Errorf("ParseInstant(%q): got %v, want error", test.In, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInstant(%q): %v", test.In, err)
			continue
		}
		if !got.Equal(test.Want) {
			t.Errorf("ParseInstant(%q) = %v, want %v", test.In, got, test.Want)
		}
	}
}

func TestMatchesQuery(t *testing.T) {
	t.Parallel()

	event := Event{
		ID:               "1",
		Title:            "Jazz Night",
		City:             "Tilburg",
		VenueName:        "Paradox",
		ShortDescription: "Jazz • Paradox",
		StartDateTime:    "2025-06-01T20:00:00",
	}

	for _, test := range []struct {
		Query string
		Want  bool
	}{
		{"", true},
		{"jazz", true},
		{"  TILBURG ", true},
		{"paradox", true},
		{"techno", false},
	} {
		if got := MatchesQuery(event, test.Query); got != test.Want {
			t.Errorf("MatchesQuery(%q) = %v, want %v", test.Query, got, test.Want)
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	t.Parallel()

	event := Event{ID: "1", Title: "Jazz Night", StartDateTime: "2025-06-01T20:00:00", Category: "Music"}
	bare := Event{ID: "2", Title: "Mystery", StartDateTime: "2025-06-01T20:00:00"}

	if !MatchesCategory(event, "music") {
		t.Error("category match should ignore case")
	}
	if MatchesCategory(event, "sports") {
		t.Error("unexpected category match")
	}
	if !MatchesCategory(bare, "") {
		t.Error("empty filter should match events without a category")
	}
	if MatchesCategory(bare, "music") {
		t.Error("event without category matched a non-empty filter")
	}
}
