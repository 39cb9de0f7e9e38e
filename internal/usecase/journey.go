package usecase

import "github.com/trip-planner/trip-planner-service/internal/domain"

// GroupJourneys partitions an ordered leg list into connecting journeys in a
// single scan. A leg extends the current journey when its departure airport
// equals the previous leg's arrival airport; otherwise it starts a new one.
// Connection time is not checked.
//
// Every input leg lands in exactly one journey, in input order.
func GroupJourneys(legs []domain.FlightLeg) []domain.Journey {
	journeys := make([]domain.Journey, 0, len(legs))
	if len(legs) == 0 {
		return journeys
	}

	start := 0
	for i := 1; i < len(legs); i++ {
		if !legs[i-1].ConnectsTo(legs[i]) {
			journeys = append(journeys, domain.NewJourney(legs[start:i]))
			start = i
		}
	}
	journeys = append(journeys, domain.NewJourney(legs[start:]))

	return journeys
}

// TopOptions returns at most limit journeys from the front of the list.
// The input order is kept; no secondary ordering is applied.
func TopOptions(journeys []domain.Journey, limit int) []domain.Journey {
	if limit < 0 {
		limit = 0
	}
	if len(journeys) <= limit {
		return journeys
	}
	return journeys[:limit]
}
