package ticketmaster

// Event is a raw Discovery API event record. Every field may be absent or
// empty; nothing here is trusted until it has been through Normalize.
type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`

	Dates struct {
		Timezone string `json:"timezone"`
		Start    struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		End struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"end"`
	} `json:"dates"`

	Images []Image `json:"images"`

	Classifications []struct {
		Segment struct {
			Name string `json:"name"`
		} `json:"segment"`
		Genre struct {
			Name string `json:"name"`
		} `json:"genre"`
	} `json:"classifications"`

	Embedded struct {
		Venues []Venue `json:"venues"`
	} `json:"_embedded"`
}

// Image is one image candidate attached to a raw event.
type Image struct {
	URL      string `json:"url"`
	Ratio    string `json:"ratio"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Fallback bool   `json:"fallback"`
}

// Venue is a raw venue record embedded in an event.
type Venue struct {
	Name string `json:"name"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// SearchResponse is the Discovery API's event-list envelope.
type SearchResponse struct {
	Embedded struct {
		Events []Event `json:"events"`
	} `json:"_embedded"`
	Page struct {
		Size          int `json:"size"`
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}
