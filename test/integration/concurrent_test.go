package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/test/mock"
	"github.com/trip-planner/trip-planner-service/test/testutil"
)

// TestConcurrent_SearchesAuthenticateIndependently checks that every search
// fetches its own token and no state leaks between requests.
func TestConcurrent_SearchesAuthenticateIndependently(t *testing.T) {
	s := newSearchStack(t)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = s.Post(searchPath, DefaultSearchBody())
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d should succeed", i)
		env := Decode[httpAdapter.FlightSearchResponseDTO](t, resp)
		assert.Len(t, env.Data.Journeys, 3, "request %d should have 3 journeys", i)
	}

	assert.Equal(t, numRequests, s.Upstream.TokenCalls())
	assert.Equal(t, numRequests, s.Upstream.OffersCalls())
	assert.Equal(t, 2*numRequests, s.Upstream.ChatCalls())
}

// TestConcurrent_MixedOperations runs every operation at once against one stack.
func TestConcurrent_MixedOperations(t *testing.T) {
	up := NewFakeUpstream(t).WithAnswers(
		Answer{Marker: MarkerItinerary, Text: string(testutil.LoadTestJSON(t, "itinerary_day_plan.json"))},
		Answer{Marker: MarkerHotels, Text: string(testutil.LoadTestJSON(t, "hotel_suggestions.json"))},
		AirportAnswer("Bengaluru", "BLR"),
		AirportAnswer("Goa", "GOI"),
	)
	up.OffersBody = testutil.LoadTestJSON(t, "amadeus_flight_offers.json")
	up.ForecastBody = testutil.LoadTestJSON(t, "weather_forecast.json")
	s := NewStack(t, up)

	calls := []struct {
		name     string
		do       func() Response
		wantCode int
	}{
		{name: "search", do: func() Response { return s.Post(searchPath, DefaultSearchBody()) }, wantCode: http.StatusOK},
		{name: "itinerary", do: func() Response { return s.Post(itineraryPath, DefaultItineraryBody()) }, wantCode: http.StatusCreated},
		{name: "pdf", do: func() Response { return s.Post(pdfPath, DefaultItineraryBody()) }, wantCode: http.StatusOK},
		{name: "hotels", do: func() Response {
			return s.Post(hotelsPath, map[string]interface{}{
				"city": "Goa", "checkIn": "2025-06-01", "checkOut": "2025-06-03", "guests": 2,
			})
		}, wantCode: http.StatusOK},
		{name: "weather", do: func() Response { return s.Get("/api/v1/weather?city=Goa") }, wantCode: http.StatusOK},
	}

	const rounds = 4
	var wg sync.WaitGroup
	results := make([]Response, len(calls)*rounds)

	for r := 0; r < rounds; r++ {
		for i, call := range calls {
			wg.Add(1)
			go func(idx int, do func() Response) {
				defer wg.Done()
				results[idx] = do()
			}(r*len(calls)+i, call.do)
		}
	}
	wg.Wait()

	for idx, resp := range results {
		call := calls[idx%len(calls)]
		assert.Equal(t, call.wantCode, resp.Code, "%s round %d: %s", call.name, idx/len(calls), resp.Body)
	}
	assert.Equal(t, rounds, up.ForecastCalls())
	assert.Equal(t, rounds, up.TokenCalls())
}

// TestConcurrent_UniqueTripIDs checks that concurrently generated trips get distinct IDs.
func TestConcurrent_UniqueTripIDs(t *testing.T) {
	s := newItineraryStack(t, string(testutil.LoadTestJSON(t, "itinerary_day_plan.json")))

	numRequests := 20
	var mu sync.Mutex
	var wg sync.WaitGroup
	ids := make(map[string]struct{}, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.Post(itineraryPath, DefaultItineraryBody())
			if resp.Code != http.StatusCreated {
				t.Errorf("unexpected status %d: %s", resp.Code, resp.Body)
				return
			}
			var env envelope[httpAdapter.TripDTO]
			if err := json.Unmarshal(resp.Body, &env); err != nil {
				t.Errorf("decode trip: %v", err)
				return
			}

			mu.Lock()
			ids[env.Data.ID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, numRequests)
}

// TestConcurrent_ProviderCallCountAccuracy verifies the mock counts calls
// correctly under concurrent use case access.
func TestConcurrent_ProviderCallCountAccuracy(t *testing.T) {
	flights := mock.NewFlightProvider("amadeus").
		WithDelay(5 * time.Millisecond).
		WithLegs(mock.SampleDirectLegs("6E", "BLR", "GOI", 2))
	uc := newUseCase(flights, airportText(), mock.NewWeatherProvider(), nil)

	numRequests := 50
	var wg sync.WaitGroup
	errs := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			criteria := defaultCriteria()
			criteria.Passengers = idx%9 + 1
			if _, err := uc.SearchFlights(context.Background(), criteria); err != nil {
				errs <- fmt.Errorf("request %d: %w", idx, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, numRequests, flights.CallCount())
}
