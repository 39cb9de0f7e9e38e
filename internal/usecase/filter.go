package usecase

import "github.com/trip-planner/trip-planner-service/internal/domain"

// ApplyJourneyFilter returns the journeys that match every criterion of filter.
//
// Behavior:
//   - Returns the original slice if filter is nil (no filtering)
//   - Nil/empty filter values are skipped (no filtering on that criterion)
//   - Keeps the input order, so a price-ordered input stays price-ordered
//   - Does NOT mutate the original journeys slice
//
// Filtering runs after grouping and before the option cut, so a filter can
// surface journeys that would otherwise fall outside the top options.
func ApplyJourneyFilter(journeys []domain.Journey, filter *domain.JourneyFilter) []domain.Journey {
	if filter == nil {
		return journeys
	}

	result := make([]domain.Journey, 0, len(journeys))
	for _, j := range journeys {
		if filter.MatchesJourney(j) {
			result = append(result, j)
		}
	}

	return result
}
