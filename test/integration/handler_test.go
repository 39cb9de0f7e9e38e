package integration

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/trip-planner/trip-planner-service/internal/adapter/http"
	"github.com/trip-planner/trip-planner-service/test/testutil"
)

const (
	searchPath    = "/api/v1/flights/search"
	itineraryPath = "/api/v1/itineraries"
	pdfPath       = "/api/v1/itineraries/pdf"
	hotelsPath    = "/api/v1/hotels/suggest"
)

func newSearchStack(t *testing.T) *Stack {
	t.Helper()
	up := NewFakeUpstream(t).WithAnswers(
		AirportAnswer("Bengaluru", " BLR\n"),
		AirportAnswer("Goa", "GOI"),
	)
	up.OffersBody = testutil.LoadTestJSON(t, "amadeus_flight_offers.json")
	return NewStack(t, up)
}

func TestSearchFlights_EndToEnd(t *testing.T) {
	s := newSearchStack(t)

	resp := s.Post(searchPath, DefaultSearchBody())

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	env := Decode[httpAdapter.FlightSearchResponseDTO](t, resp)
	assert.True(t, env.Success)

	criteria := env.Data.SearchCriteria
	assert.Equal(t, "BLR", criteria.OriginCode)
	assert.Equal(t, "GOI", criteria.DestinationCode)
	assert.Equal(t, "Bengaluru", criteria.Origin)

	meta := env.Data.Metadata
	assert.Equal(t, "amadeus", meta.Provider)
	assert.Equal(t, 4, meta.TotalLegs)
	assert.Equal(t, 3, meta.TotalJourneys)
	assert.Equal(t, 3, meta.ReturnedJourneys)

	journeys := env.Data.Journeys
	require.Len(t, journeys, 3)

	// cheapest offer first, connecting legs grouped
	assert.Equal(t, "6E", journeys[0].Legs[0].Carrier)
	assert.Equal(t, 0, journeys[0].Stops)
	assert.InDelta(t, 3899.0, journeys[0].TotalPrice.Amount, 0.001)

	assert.Equal(t, "QP", journeys[1].Legs[0].Carrier)
	assert.Equal(t, 1, journeys[1].MinSeats, "missing seat count defaults to one")

	require.Len(t, journeys[2].Legs, 2)
	assert.Equal(t, 1, journeys[2].Stops)
	assert.Equal(t, "BOM", journeys[2].Legs[0].Arrival.Airport)
	assert.Equal(t, "2025-06-01T05:40:00", journeys[2].Legs[0].Departure.DateTime)
	assert.InDelta(t, 14840.0, journeys[2].TotalPrice.Amount, 0.001)
	assert.Equal(t, 3, journeys[2].MinSeats)

	assert.Equal(t, 1, s.Upstream.TokenCalls())
	assert.Equal(t, 1, s.Upstream.OffersCalls())
	assert.Equal(t, 2, s.Upstream.ChatCalls())
	assert.Empty(t, s.Sleeper.Durations())
}

func TestSearchFlights_AirportCodesSkipResolution(t *testing.T) {
	s := newSearchStack(t)

	body := DefaultSearchBody()
	body.Origin = "BLR"
	body.Destination = "GOI"
	resp := s.Post(searchPath, body)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 0, s.Upstream.ChatCalls())
}

func TestSearchFlights_Filters(t *testing.T) {
	tests := []struct {
		name         string
		filters      map[string]interface{}
		wantCarriers []string
	}{
		{
			name:         "direct only",
			filters:      map[string]interface{}{"maxStops": 0},
			wantCarriers: []string{"6E", "QP"},
		},
		{
			name:         "max price",
			filters:      map[string]interface{}{"maxPrice": 4000},
			wantCarriers: []string{"6E"},
		},
		{
			name:         "carrier",
			filters:      map[string]interface{}{"carriers": []string{"ai"}},
			wantCarriers: []string{"AI"},
		},
		{
			name: "evening departures",
			filters: map[string]interface{}{
				"departureTimeRange": map[string]string{"start": "17:00", "end": "23:00"},
			},
			wantCarriers: []string{"QP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSearchStack(t)
			body := DefaultSearchBody()
			body.Filters = tt.filters

			resp := s.Post(searchPath, body)

			require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
			env := Decode[httpAdapter.FlightSearchResponseDTO](t, resp)
			carriers := make([]string, 0, len(env.Data.Journeys))
			for _, j := range env.Data.Journeys {
				carriers = append(carriers, j.Legs[0].Carrier)
			}
			assert.Equal(t, tt.wantCarriers, carriers)
			assert.Equal(t, 3, env.Data.Metadata.TotalJourneys)
		})
	}
}

func TestSearchFlights_OverloadedProviderExhaustsRetries(t *testing.T) {
	s := newSearchStack(t)
	s.Upstream.OffersStatus = http.StatusServiceUnavailable

	resp := s.Post(searchPath, DefaultSearchBody())

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	env := Decode[map[string]interface{}](t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "retries_exhausted", env.Error.Code)

	assert.Equal(t, 1, s.Upstream.TokenCalls())
	assert.Equal(t, 3, s.Upstream.OffersCalls())
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, s.Sleeper.Durations())
}

func TestSearchFlights_RejectedCredentials(t *testing.T) {
	s := newSearchStack(t)
	s.Upstream.TokenStatus = http.StatusUnauthorized

	resp := s.Post(searchPath, DefaultSearchBody())

	require.Equal(t, http.StatusBadGateway, resp.Code)
	env := Decode[map[string]interface{}](t, resp)
	assert.Equal(t, "upstream_error", env.Error.Code)
	assert.Contains(t, env.Error.Message, "credentials")
	assert.Equal(t, 0, s.Upstream.OffersCalls())
	assert.Empty(t, s.Sleeper.Durations(), "client errors are not retried")
}

func TestSearchFlights_UnresolvableCity(t *testing.T) {
	up := NewFakeUpstream(t).WithAnswers(
		AirportAnswer("Bengaluru", "BLR"),
		AirportAnswer("Atlantis", "I am not sure which airport that is."),
	)
	s := NewStack(t, up)

	body := DefaultSearchBody()
	body.Destination = "Atlantis"
	resp := s.Post(searchPath, body)

	require.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, 0, up.TokenCalls())
}

func TestSearchFlights_ValidationNeverReachesUpstream(t *testing.T) {
	s := newSearchStack(t)

	body := DefaultSearchBody()
	body.Passengers = 0
	resp := s.Post(searchPath, body)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	env := Decode[map[string]interface{}](t, resp)
	assert.Contains(t, env.Error.Details, "passengers")
	assert.Equal(t, 0, s.Upstream.ChatCalls())
	assert.Equal(t, 0, s.Upstream.TokenCalls())
}

func newItineraryStack(t *testing.T, plan string) *Stack {
	t.Helper()
	up := NewFakeUpstream(t).WithAnswers(Answer{Marker: MarkerItinerary, Text: plan})
	return NewStack(t, up)
}

func TestGenerateItinerary_EndToEnd(t *testing.T) {
	plan := "```json\n" + string(testutil.LoadTestJSON(t, "itinerary_day_plan.json")) + "\n```"
	s := newItineraryStack(t, plan)

	resp := s.Post(itineraryPath, DefaultItineraryBody())

	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))
	env := Decode[httpAdapter.TripDTO](t, resp)
	trip := env.Data

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Goa", trip.Destination)
	require.Len(t, trip.Itinerary, 8)

	first := trip.Itinerary[0]
	assert.Equal(t, "Check-in at Taj Fort Aguada Resort", first.Activity)
	assert.Equal(t, "2025-06-01", first.Date)
	assert.Equal(t, "14:00", first.Time)
	assert.Equal(t, "Accommodation", first.Category)

	assert.Equal(t, "Visit Fort Aguada", trip.Itinerary[1].Activity)
	assert.Equal(t, "Sightseeing", trip.Itinerary[1].Category)
	assert.Equal(t, "Transportation: Bus from Panaji to Old Goa.", trip.Itinerary[6].Activity)

	last := trip.Itinerary[7]
	assert.Equal(t, "Check-out from Taj Fort Aguada Resort", last.Activity)
	assert.Equal(t, "2025-06-02", last.Date)
	assert.Equal(t, "11:00", last.Time)

	prompts := s.Upstream.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "2-day travel itinerary for Goa")
}

func TestGenerateItinerary_MissingDaysKeepsAnchors(t *testing.T) {
	s := newItineraryStack(t, `{"destination": "Goa"}`)

	resp := s.Post(itineraryPath, DefaultItineraryBody())

	require.Equal(t, http.StatusCreated, resp.Code)
	env := Decode[httpAdapter.TripDTO](t, resp)
	require.Len(t, env.Data.Itinerary, 2)
	assert.Equal(t, "Accommodation", env.Data.Itinerary[0].Category)
	assert.Equal(t, "Accommodation", env.Data.Itinerary[1].Category)
}

func TestGenerateItinerary_UnreadablePlan(t *testing.T) {
	s := newItineraryStack(t, "Day 1: relax on the beach.")

	resp := s.Post(itineraryPath, DefaultItineraryBody())

	require.Equal(t, http.StatusBadGateway, resp.Code)
	env := Decode[map[string]interface{}](t, resp)
	assert.Equal(t, "Generated itinerary could not be read", env.Error.Message)
}

func TestGenerateItinerary_ModelOverloaded(t *testing.T) {
	s := newItineraryStack(t, "{}")
	s.Upstream.ChatStatus = http.StatusTooManyRequests

	resp := s.Post(itineraryPath, DefaultItineraryBody())

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, 3, s.Upstream.ChatCalls())
	assert.Equal(t, 6*time.Second, s.Sleeper.Total())
}

func TestExportItineraryPDF_EndToEnd(t *testing.T) {
	s := newItineraryStack(t, string(testutil.LoadTestJSON(t, "itinerary_day_plan.json")))

	resp := s.Post(pdfPath, DefaultItineraryBody())

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, "application/pdf", resp.Headers.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary-goa-2025-06-01.pdf"`, resp.Headers.Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(resp.Body, []byte("%PDF")))
}

func TestSuggestHotels_EndToEnd(t *testing.T) {
	up := NewFakeUpstream(t).WithAnswers(Answer{
		Marker: MarkerHotels,
		Text:   string(testutil.LoadTestJSON(t, "hotel_suggestions.json")),
	})
	s := NewStack(t, up)

	resp := s.Post(hotelsPath, map[string]interface{}{
		"city":     "Goa",
		"checkIn":  "2025-06-01",
		"checkOut": "2025-06-03",
		"guests":   2,
	})

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	env := Decode[httpAdapter.HotelSuggestionsDTO](t, resp)
	require.Len(t, env.Data.Hotels, 2, "the unnamed suggestion is dropped")

	assert.Equal(t, "Taj Fort Aguada Resort", env.Data.Hotels[0].Name)
	assert.InDelta(t, 48000.0, env.Data.Hotels[0].TotalStayCost, 0.001)
	assert.InDelta(t, 4.5, env.Data.Hotels[1].StarRating, 0.001)
	assert.Equal(t, "Goa", env.Data.City)
}

func TestForecast_EndToEnd(t *testing.T) {
	up := NewFakeUpstream(t)
	up.ForecastBody = testutil.LoadTestJSON(t, "weather_forecast.json")
	s := NewStack(t, up)

	resp := s.Get("/api/v1/weather?city=Goa&days=3")

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	env := Decode[httpAdapter.ForecastResponseDTO](t, resp)
	require.Len(t, env.Data.Forecast, 3)
	assert.Equal(t, "Moderate rain", env.Data.Forecast[1].Condition)
	assert.Equal(t, 88, env.Data.Forecast[1].ChanceOfRain)
	assert.InDelta(t, 31.4, env.Data.Forecast[0].MaxTempC, 0.001)
}

func TestForecast_UnknownLocation(t *testing.T) {
	up := NewFakeUpstream(t)
	up.ForecastStatus = http.StatusBadRequest
	s := NewStack(t, up)

	resp := s.Get("/api/v1/weather?city=Nowhere")

	require.Equal(t, http.StatusBadGateway, resp.Code)
	env := Decode[map[string]interface{}](t, resp)
	assert.Equal(t, "Upstream provider reported an error", env.Error.Message)
	assert.Equal(t, 1, up.ForecastCalls())
}

func TestForecast_DaysOutOfRange(t *testing.T) {
	s := NewStack(t, NewFakeUpstream(t))

	resp := s.Get("/api/v1/weather?city=Goa&days=15")

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, 0, s.Upstream.ForecastCalls())
}

func TestHealth_EndToEnd(t *testing.T) {
	s := NewStack(t, NewFakeUpstream(t))

	resp := s.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}
