package amadeus

// RawEnvelope is the top-level flight-offers response.
type RawEnvelope struct {
	Data   []RawOffer         `json:"data"`
	Errors []RawProviderError `json:"errors"`
}

// RawOffer is a single priced flight offer.
type RawOffer struct {
	ID                    string         `json:"id"`
	NumberOfBookableSeats *int           `json:"numberOfBookableSeats"`
	Price                 RawPrice       `json:"price"`
	Itineraries           []RawItinerary `json:"itineraries"`
}

// RawPrice holds the offer price. Amounts are decimal strings.
type RawPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// RawItinerary is one direction of an offer.
type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is one flown segment of an itinerary.
type RawSegment struct {
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
	Departure   RawEndpoint `json:"departure"`
	Arrival     RawEndpoint `json:"arrival"`
}

// RawEndpoint is a segment departure or arrival.
type RawEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// RawProviderError is an entry of the errors array.
type RawProviderError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type tokenResponse struct {
	Type        string `json:"type"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type searchRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []originDestination `json:"originDestinations"`
	Travelers          []traveler          `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     searchCriteria      `json:"searchCriteria"`
}

type originDestination struct {
	ID                      string        `json:"id"`
	OriginLocationCode      string        `json:"originLocationCode"`
	DestinationLocationCode string        `json:"destinationLocationCode"`
	DepartureDateTimeRange  dateTimeRange `json:"departureDateTimeRange"`
}

type dateTimeRange struct {
	Date string `json:"date"`
}

type traveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type searchCriteria struct {
	MaxFlightOffers int           `json:"maxFlightOffers"`
	FlightFilters   flightFilters `json:"flightFilters"`
}

type flightFilters struct {
	CabinRestrictions []cabinRestriction `json:"cabinRestrictions"`
}

type cabinRestriction struct {
	Cabin                string   `json:"cabin"`
	Coverage             string   `json:"coverage"`
	OriginDestinationIDs []string `json:"originDestinationIds"`
}
