package usecase

import (
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

var baseDeparture = time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

// createTestLeg creates a two-hour leg departing hoursAfter hours past baseDeparture.
func createTestLeg(carrier, from, to string, price float64, seats, hoursAfter int) domain.FlightLeg {
	dep := baseDeparture.Add(time.Duration(hoursAfter) * time.Hour)
	return domain.FlightLeg{
		CarrierCode:    carrier,
		FlightNumber:   "100",
		Departure:      domain.FlightPoint{AirportCode: from, DateTime: dep},
		Arrival:        domain.FlightPoint{AirportCode: to, DateTime: dep.Add(2 * time.Hour)},
		Price:          domain.PriceInfo{Amount: price, Currency: "INR"},
		AvailableSeats: seats,
	}
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
