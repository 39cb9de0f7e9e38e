// Package domain contains the core business entities and rules for the trip planner.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// FlightLeg represents a single scheduled flight between two airports.
// Legs are created only by a provider normalizer and are never mutated afterwards.
type FlightLeg struct {
	// CarrierCode is the IATA airline code (e.g., "AI")
	CarrierCode string `json:"carrierCode"`

	// FlightNumber is the carrier's flight number (e.g., "2993")
	FlightNumber string `json:"flightNumber"`

	// Departure contains departure airport and time information
	Departure FlightPoint `json:"departure"`

	// Arrival contains arrival airport and time information
	Arrival FlightPoint `json:"arrival"`

	// Price is the total price of the offer this leg belongs to
	Price PriceInfo `json:"price"`

	// AvailableSeats is the number of bookable seats of the owning offer
	AvailableSeats int `json:"availableSeats"`
}

// FlightPoint represents a point in a flight leg (departure or arrival).
type FlightPoint struct {
	// AirportCode is the IATA airport code (e.g., "DEL")
	AirportCode string `json:"airportCode"`

	// DateTime is the scheduled local time. No timezone is attached.
	DateTime time.Time `json:"dateTime"`
}

// PriceInfo contains pricing information.
type PriceInfo struct {
	// Amount is the numeric price value
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "INR")
	Currency string `json:"currency"`
}

// Designator returns the printable flight designator, e.g. "AI 2993".
func (l FlightLeg) Designator() string {
	return l.CarrierCode + " " + l.FlightNumber
}

// ConnectsTo reports whether next departs from the airport this leg arrives at.
// Only airport codes are compared; connection time is not checked.
func (l FlightLeg) ConnectsTo(next FlightLeg) bool {
	return l.Arrival.AirportCode == next.Departure.AirportCode
}

// Journey is one or more legs forming a single connecting trip.
// Legs form a connected chain: legs[i].Arrival equals legs[i+1].Departure.
type Journey struct {
	// Legs is the ordered, non-empty list of flight legs
	Legs []FlightLeg `json:"legs"`

	// TotalPrice is the sum of the leg prices
	TotalPrice PriceInfo `json:"totalPrice"`

	// MinSeats is the smallest available seat count across legs
	MinSeats int `json:"minSeats"`
}

// NewJourney builds a journey from a connected, non-empty chain of legs and
// derives its total price and minimum seat count.
func NewJourney(legs []FlightLeg) Journey {
	j := Journey{Legs: make([]FlightLeg, len(legs))}
	copy(j.Legs, legs)

	for i, leg := range j.Legs {
		j.TotalPrice.Amount += leg.Price.Amount
		if i == 0 {
			j.TotalPrice.Currency = leg.Price.Currency
			j.MinSeats = leg.AvailableSeats
			continue
		}
		if leg.AvailableSeats < j.MinSeats {
			j.MinSeats = leg.AvailableSeats
		}
	}

	return j
}

// Origin returns the departure airport of the first leg.
func (j Journey) Origin() string {
	if len(j.Legs) == 0 {
		return ""
	}
	return j.Legs[0].Departure.AirportCode
}

// Destination returns the arrival airport of the last leg.
func (j Journey) Destination() string {
	if len(j.Legs) == 0 {
		return ""
	}
	return j.Legs[len(j.Legs)-1].Arrival.AirportCode
}

// Stops returns the number of intermediate connections.
func (j Journey) Stops() int {
	if len(j.Legs) == 0 {
		return 0
	}
	return len(j.Legs) - 1
}
