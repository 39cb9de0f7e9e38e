// Package http provides the HTTP handler layer for the trip planner API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

// DefaultForecastDays is used when the weather query omits days.
const DefaultForecastDays = 3

// maxPlaceLength bounds free-text city and label fields.
const maxPlaceLength = 80

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the boarding city or IATA code (e.g., "Delhi" or "DEL")
	Origin string `json:"origin" example:"Delhi"`

	// Destination is the arrival city or IATA code
	Destination string `json:"destination" example:"Goa"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-06-01"`

	// Passengers is the number of adult passengers (1-9)
	Passengers int `json:"passengers" example:"2"`

	// Filters contains optional filtering criteria applied before the top options are cut
	Filters *FilterDTO `json:"filters,omitempty"`
}

// FilterDTO represents optional filters for journeys.
// Example: {"maxPrice": 15000, "maxStops": 0, "carriers": ["AI"], "departureTimeRange": {"start": "06:00", "end": "12:00"}}
type FilterDTO struct {
	// MaxPrice drops journeys whose total price is above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"15000"`

	// MaxStops drops journeys with more connections (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// MinSeats drops journeys where any leg has fewer seats left
	MinSeats *int `json:"minSeats,omitempty" example:"2"`

	// Carriers keeps only journeys flown entirely by these carrier codes
	Carriers []string `json:"carriers,omitempty" example:"AI,6E"`

	// DepartureTimeRange keeps journeys whose first leg departs within the window
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`
}

// TimeRangeDTO represents a time window for filtering.
type TimeRangeDTO struct {
	// Start is the beginning of the window (HH:MM)
	Start string `json:"start" example:"06:00"`

	// End is the end of the window (HH:MM)
	End string `json:"end" example:"12:00"`
}

// GenerateItineraryRequest represents the request body for itinerary generation and export.
type GenerateItineraryRequest struct {
	Destination string  `json:"destination" example:"Goa"`
	StartDate   string  `json:"startDate" example:"2025-06-01"`
	EndDate     string  `json:"endDate" example:"2025-06-03"`
	PartySize   int     `json:"partySize" example:"2"`
	Budget      float64 `json:"budget" example:"40000"`

	// AccommodationLabel names the stay used for the check-in and check-out entries
	AccommodationLabel string `json:"accommodationLabel" example:"Taj Fort Aguada"`
}

// SuggestHotelsRequest represents the request body for hotel suggestions.
type SuggestHotelsRequest struct {
	City     string `json:"city" example:"Jaipur"`
	CheckIn  string `json:"checkIn" example:"2025-06-01"`
	CheckOut string `json:"checkOut" example:"2025-06-04"`
	Guests   int    `json:"guests" example:"2"`
}

// ForecastQuery represents the query parameters of the weather endpoint.
type ForecastQuery struct {
	City string
	Days int
}

// Validation regex patterns.
var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate validates the search request and returns any validation errors.
// Origin and destination are trimmed in place.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Origin = validatePlace(errs, "origin", r.Origin)
	r.Destination = validatePlace(errs, "destination", r.Destination)
	if r.Origin != "" && r.Destination != "" && strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "departureDate", r.DepartureDate)
	validateCount(errs, "passengers", r.Passengers)
	r.validateFilters(errs)

	return errs.orNil()
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}
	f := r.Filters

	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}
	if f.MaxStops != nil && *f.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}
	if f.MinSeats != nil && *f.MinSeats < 0 {
		errs.Add("filters.minSeats", "minSeats must be a non-negative number")
	}

	for i, carrier := range f.Carriers {
		normalized := strings.ToUpper(strings.TrimSpace(carrier))
		if len(normalized) != 2 && len(normalized) != 3 {
			errs.Add(fmt.Sprintf("filters.carriers[%d]", i), "carrier code must be 2 or 3 characters")
		}
		f.Carriers[i] = normalized
	}

	if tr := f.DepartureTimeRange; tr != nil {
		validateTimeOfDay(errs, "filters.departureTimeRange.start", tr.Start)
		validateTimeOfDay(errs, "filters.departureTimeRange.end", tr.End)
		if isValidTimeFormat(tr.Start) && isValidTimeFormat(tr.End) && tr.End < tr.Start {
			errs.Add("filters.departureTimeRange", "end must not be before start")
		}
	}
}

// Validate validates the itinerary request and returns any validation errors.
func (r *GenerateItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Destination = validatePlace(errs, "destination", r.Destination)
	r.AccommodationLabel = validatePlace(errs, "accommodationLabel", r.AccommodationLabel)
	validateDateRange(errs, "startDate", r.StartDate, "endDate", r.EndDate)
	validateCount(errs, "partySize", r.PartySize)
	if r.Budget < 0 {
		errs.Add("budget", "budget must not be negative")
	}

	return errs.orNil()
}

// Validate validates the hotel request and returns any validation errors.
func (r *SuggestHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.City = validatePlace(errs, "city", r.City)
	validateDateRange(errs, "checkIn", r.CheckIn, "checkOut", r.CheckOut)
	validateCount(errs, "guests", r.Guests)

	return errs.orNil()
}

// Validate validates the weather query and returns any validation errors.
func (q *ForecastQuery) Validate() error {
	errs := &ValidationErrors{}

	q.City = validatePlace(errs, "city", q.City)
	if q.Days < 1 || q.Days > usecase.MaxForecastDays {
		errs.Add("days", fmt.Sprintf("days must be between 1 and %d", usecase.MaxForecastDays))
	}

	return errs.orNil()
}

// validatePlace checks a required free-text field and returns it trimmed.
func validatePlace(errs *ValidationErrors, field, value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.Add(field, field+" is required")
	case len(value) > maxPlaceLength:
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, maxPlaceLength))
	}
	return value
}

func validateDate(errs *ValidationErrors, field, value string) bool {
	if value == "" {
		errs.Add(field, field+" is required")
		return false
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return false
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		errs.Add(field, field+" is not a valid date")
		return false
	}
	return true
}

func validateDateRange(errs *ValidationErrors, startField, start, endField, end string) {
	startOK := validateDate(errs, startField, start)
	endOK := validateDate(errs, endField, end)
	if startOK && endOK && end < start {
		errs.Add(endField, fmt.Sprintf("%s must not be before %s", endField, startField))
	}
}

func validateCount(errs *ValidationErrors, field string, n int) {
	if n < 1 {
		errs.Add(field, field+" must be at least 1")
		return
	}
	if n > domain.MaxPartySize {
		errs.Add(field, fmt.Sprintf("%s cannot exceed %d", field, domain.MaxPartySize))
	}
}

func validateTimeOfDay(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" is required when a time range is specified")
		return
	}
	if !isValidTimeFormat(value) {
		errs.Add(field, field+" must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

// isValidTimeFormat validates that a time string is in HH:MM format with valid values.
func isValidTimeFormat(timeStr string) bool {
	if !timePattern.MatchString(timeStr) {
		return false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(timeStr, "%02d:%02d", &hour, &minute); err != nil {
		return false
	}

	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}
