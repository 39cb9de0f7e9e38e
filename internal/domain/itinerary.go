package domain

// Category classifies an itinerary entry.
type Category string

// Itinerary entry categories.
const (
	CategoryAccommodation Category = "Accommodation"
	CategorySightseeing   Category = "Sightseeing"
	CategoryInformation   Category = "Information"
	CategoryTransport     Category = "Transport"
)

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAccommodation, CategorySightseeing, CategoryInformation, CategoryTransport:
		return true
	default:
		return false
	}
}

// ItineraryEntry is a single dated activity in a trip itinerary.
type ItineraryEntry struct {
	// Activity is the human-readable description
	Activity string `json:"activity"`

	// Date is the calendar date in YYYY-MM-DD format
	Date string `json:"date"`

	// Time is the time of day in HH:MM format
	Time string `json:"time"`

	// Category is the entry classification
	Category Category `json:"category"`
}

// Trip holds the parameters of a planned trip and its itinerary.
// The itinerary is append-only: entries keep the order they were added in.
type Trip struct {
	ID          string           `json:"id"`
	Destination string           `json:"destination"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	PartySize   int              `json:"partySize"`
	Budget      float64          `json:"budget,omitempty"`
	Itinerary   []ItineraryEntry `json:"itinerary"`
}

// NewTrip creates a trip with an empty itinerary.
func NewTrip(id, destination, startDate, endDate string, partySize int, budget float64) *Trip {
	return &Trip{
		ID:          id,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		PartySize:   partySize,
		Budget:      budget,
		Itinerary:   []ItineraryEntry{},
	}
}

// AddItineraryEntries appends entries in the given order.
func (t *Trip) AddItineraryEntries(entries ...ItineraryEntry) {
	t.Itinerary = append(t.Itinerary, entries...)
}
