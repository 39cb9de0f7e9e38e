package domain

import (
	"fmt"
	"strings"
	"time"
)

// JourneyFilter defines optional filters applied to grouped journeys.
// A nil filter keeps every journey.
type JourneyFilter struct {
	// MaxPrice filters out journeys whose total price is above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops filters out journeys with more connections than this value
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// MinSeats filters out journeys with fewer bookable seats than this value
	MinSeats *int `json:"minSeats,omitempty"`

	// Carriers keeps only journeys whose every leg is operated by one of these codes
	// Empty slice means no filtering by carrier
	Carriers []string `json:"carriers,omitempty"`

	// DepartureTimeRange keeps journeys whose first leg departs within this window
	DepartureTimeRange *TimeRange `json:"departureTimeRange,omitempty"`
}

// TimeRange represents a time-of-day window for filtering.
type TimeRange struct {
	// Start is the beginning of the time range (inclusive)
	Start time.Time `json:"start"`

	// End is the end of the time range (inclusive)
	End time.Time `json:"end"`
}

// Contains checks if the time of day of t falls within the range.
func (tr *TimeRange) Contains(t time.Time) bool {
	if tr == nil {
		return true
	}
	tMinutes := t.Hour()*60 + t.Minute()
	startMinutes := tr.Start.Hour()*60 + tr.Start.Minute()
	endMinutes := tr.End.Hour()*60 + tr.End.Minute()

	return tMinutes >= startMinutes && tMinutes <= endMinutes
}

// Validate checks the filter values for consistency.
func (f *JourneyFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("%w: filter.maxPrice must not be negative", ErrInvalidRequest)
	}
	if f.MaxStops != nil && *f.MaxStops < 0 {
		return fmt.Errorf("%w: filter.maxStops must not be negative", ErrInvalidRequest)
	}
	if f.MinSeats != nil && *f.MinSeats < 0 {
		return fmt.Errorf("%w: filter.minSeats must not be negative", ErrInvalidRequest)
	}
	if tr := f.DepartureTimeRange; tr != nil && tr.End.Before(tr.Start) {
		return fmt.Errorf("%w: filter.departureTimeRange end is before start", ErrInvalidRequest)
	}
	return nil
}

// MatchesJourney checks if a journey matches all the filter criteria.
func (f *JourneyFilter) MatchesJourney(j Journey) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && j.TotalPrice.Amount > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && j.Stops() > *f.MaxStops {
		return false
	}

	if f.MinSeats != nil && j.MinSeats < *f.MinSeats {
		return false
	}

	if len(f.Carriers) > 0 {
		for _, leg := range j.Legs {
			if !containsFold(f.Carriers, leg.CarrierCode) {
				return false
			}
		}
	}

	if f.DepartureTimeRange != nil && len(j.Legs) > 0 &&
		!f.DepartureTimeRange.Contains(j.Legs[0].Departure.DateTime) {
		return false
	}

	return true
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
