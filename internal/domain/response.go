package domain

// FlightSearchResponse represents the grouped result of a flight search.
type FlightSearchResponse struct {
	// SearchCriteria contains the resolved search parameters
	SearchCriteria SearchCriteriaResponse `json:"search_criteria"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Journeys contains at most MaxJourneyOptions journeys, cheapest first
	Journeys []Journey `json:"journeys"`
}

// SearchCriteriaResponse represents the search criteria in the response.
type SearchCriteriaResponse struct {
	// Origin is the city or code the caller asked for
	Origin string `json:"origin"`

	// OriginCode is the resolved IATA code of the departure airport
	OriginCode string `json:"origin_code"`

	// Destination is the city or code the caller asked for
	Destination string `json:"destination"`

	// DestinationCode is the resolved IATA code of the arrival airport
	DestinationCode string `json:"destination_code"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// Passengers is the number of passengers
	Passengers int `json:"passengers"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// Provider is the name of the provider that served the offers
	Provider string `json:"provider"`

	// TotalLegs is the number of normalized legs returned by the provider
	TotalLegs int `json:"total_legs"`

	// TotalJourneys is the number of journeys formed before the option cut
	TotalJourneys int `json:"total_journeys"`

	// ReturnedJourneys is the number of journeys in the response
	ReturnedJourneys int `json:"returned_journeys"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewFlightSearchResponse creates a response for the given criteria and journeys.
func NewFlightSearchResponse(criteria SearchCriteriaResponse, journeys []Journey, metadata SearchMetadata) FlightSearchResponse {
	if journeys == nil {
		journeys = []Journey{}
	}
	metadata.ReturnedJourneys = len(journeys)

	return FlightSearchResponse{
		SearchCriteria: criteria,
		Metadata:       metadata,
		Journeys:       journeys,
	}
}
