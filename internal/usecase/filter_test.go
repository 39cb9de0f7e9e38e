package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

func TestApplyJourneyFilter(t *testing.T) {
	journeys := GroupJourneys([]domain.FlightLeg{
		createTestLeg("6E", "DEL", "GOI", 4800, 9, 0),
		createTestLeg("AI", "DEL", "HYD", 2500, 5, 2),
		createTestLeg("AI", "HYD", "GOI", 2500, 7, 5),
		createTestLeg("UK", "DEL", "GOI", 5100, 1, 8),
	})

	tests := []struct {
		name        string
		filter      *domain.JourneyFilter
		wantTotals  []float64
		wantSameRef bool
	}{
		{
			name:        "nil filter returns input",
			filter:      nil,
			wantTotals:  []float64{4800, 5000, 5100},
			wantSameRef: true,
		},
		{
			name:       "empty filter keeps all",
			filter:     &domain.JourneyFilter{},
			wantTotals: []float64{4800, 5000, 5100},
		},
		{
			name:       "max price",
			filter:     &domain.JourneyFilter{MaxPrice: floatPtr(5000)},
			wantTotals: []float64{4800, 5000},
		},
		{
			name:       "direct only",
			filter:     &domain.JourneyFilter{MaxStops: intPtr(0)},
			wantTotals: []float64{4800, 5100},
		},
		{
			name:       "min seats",
			filter:     &domain.JourneyFilter{MinSeats: intPtr(5)},
			wantTotals: []float64{4800, 5000},
		},
		{
			name:       "carrier whitelist",
			filter:     &domain.JourneyFilter{Carriers: []string{"AI", "uk"}},
			wantTotals: []float64{5000, 5100},
		},
		{
			name:       "nothing matches",
			filter:     &domain.JourneyFilter{MaxPrice: floatPtr(100)},
			wantTotals: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyJourneyFilter(journeys, tt.filter)

			totals := make([]float64, 0, len(got))
			for _, j := range got {
				totals = append(totals, j.TotalPrice.Amount)
			}
			assert.Equal(t, tt.wantTotals, totals)
			if tt.wantSameRef {
				assert.Equal(t, journeys, got)
			}
		})
	}
}

func TestApplyJourneyFilter_DoesNotMutateInput(t *testing.T) {
	journeys := GroupJourneys([]domain.FlightLeg{
		createTestLeg("6E", "DEL", "GOI", 4800, 9, 0),
		createTestLeg("UK", "DEL", "GOI", 5100, 1, 8),
	})
	before := append([]domain.Journey(nil), journeys...)

	_ = ApplyJourneyFilter(journeys, &domain.JourneyFilter{MaxPrice: floatPtr(4900)})

	assert.Equal(t, before, journeys)
}
