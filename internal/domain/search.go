package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format used throughout the planner.
const DateLayout = "2006-01-02"

// MaxPartySize is the largest party a single search or plan accepts.
const MaxPartySize = 9

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsAirportCode reports whether s is already a 3-letter IATA airport code.
func IsAirportCode(s string) bool {
	return airportCodeRegex.MatchString(s)
}

// FlightSearchCriteria defines the parameters for a flight search.
// Origin and destination are city names or IATA codes.
type FlightSearchCriteria struct {
	// Origin is the boarding city or airport code (e.g., "Delhi" or "DEL")
	Origin string `json:"origin"`

	// Destination is the arrival city or airport code
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of adult travelers
	Passengers int `json:"passengers"`

	// Filter optionally narrows the grouped journeys
	Filter *JourneyFilter `json:"filter,omitempty"`
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *FlightSearchCriteria) Validate() error {
	if strings.TrimSpace(s.Origin) == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(s.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if strings.EqualFold(strings.TrimSpace(s.Origin), strings.TrimSpace(s.Destination)) {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	if err := validateDate("departureDate", s.DepartureDate); err != nil {
		return err
	}
	if err := validatePartySize("passengers", s.Passengers); err != nil {
		return err
	}
	return s.Filter.Validate()
}

// ItineraryRequest defines the parameters for itinerary generation.
type ItineraryRequest struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	PartySize   int     `json:"partySize"`
	Budget      float64 `json:"budget"`

	// AccommodationLabel names the place used for the check-in and check-out anchors
	AccommodationLabel string `json:"accommodationLabel"`
}

// Validate checks if the itinerary request is valid.
func (r *ItineraryRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if err := validateDateRange(r.StartDate, r.EndDate); err != nil {
		return err
	}
	if err := validatePartySize("partySize", r.PartySize); err != nil {
		return err
	}
	if r.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.AccommodationLabel) == "" {
		return fmt.Errorf("%w: accommodationLabel is required", ErrInvalidRequest)
	}
	return nil
}

// Days returns the inclusive number of calendar days in the request.
// The request must be valid.
func (r *ItineraryRequest) Days() int {
	start, _ := time.Parse(DateLayout, r.StartDate)
	end, _ := time.Parse(DateLayout, r.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// HotelSearchCriteria defines the parameters for hotel suggestions.
type HotelSearchCriteria struct {
	City     string `json:"city"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// Validate checks if the hotel criteria is valid.
func (h *HotelSearchCriteria) Validate() error {
	if strings.TrimSpace(h.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidRequest)
	}
	if err := validateDateRange(h.CheckIn, h.CheckOut); err != nil {
		return err
	}
	return validatePartySize("guests", h.Guests)
}

func validateDate(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

func validateDateRange(start, end string) error {
	if err := validateDate("startDate", start); err != nil {
		return err
	}
	if err := validateDate("endDate", end); err != nil {
		return err
	}
	// Same layout, so lexical order is chronological.
	if end < start {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidRequest)
	}
	return nil
}

func validatePartySize(field string, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidRequest, field)
	}
	if n > MaxPartySize {
		return fmt.Errorf("%w: %s cannot exceed %d", ErrInvalidRequest, field, MaxPartySize)
	}
	return nil
}
