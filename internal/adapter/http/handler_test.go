package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/trip-planner-service/internal/adapter/http/response"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

// mockUseCase is a hand-written TripPlannerUseCase whose behavior is set per test.
type mockUseCase struct {
	searchFunc   func(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error)
	generateFunc func(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error)
	hotelsFunc   func(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error)
	forecastFunc func(ctx context.Context, city string, days int) ([]domain.ForecastDay, error)
	renderFunc   func(trip *domain.Trip) ([]byte, error)
}

var _ usecase.TripPlannerUseCase = (*mockUseCase)(nil)

func (m *mockUseCase) SearchFlights(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, criteria)
	}
	resp := domain.NewFlightSearchResponse(domain.SearchCriteriaResponse{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		Passengers:    criteria.Passengers,
	}, nil, domain.SearchMetadata{Provider: "amadeus"})
	return &resp, nil
}

func (m *mockUseCase) GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return sampleTrip(), nil
}

func (m *mockUseCase) SuggestHotels(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error) {
	if m.hotelsFunc != nil {
		return m.hotelsFunc(ctx, criteria)
	}
	return []domain.Hotel{}, nil
}

func (m *mockUseCase) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, city, days)
	}
	return []domain.ForecastDay{}, nil
}

func (m *mockUseCase) RenderItineraryPDF(trip *domain.Trip) ([]byte, error) {
	if m.renderFunc != nil {
		return m.renderFunc(trip)
	}
	return []byte("%PDF-1.3"), nil
}

func sampleTrip() *domain.Trip {
	trip := domain.NewTrip("trip-123", "Goa", "2025-06-01", "2025-06-02", 2, 40000)
	trip.AddItineraryEntries(
		domain.ItineraryEntry{Activity: "Check-in at Taj Fort Aguada", Date: "2025-06-01", Time: "14:00", Category: domain.CategoryAccommodation},
		domain.ItineraryEntry{Activity: "Visit Fort Aguada", Date: "2025-06-01", Time: "10:00", Category: domain.CategorySightseeing},
		domain.ItineraryEntry{Activity: "Check-out from Taj Fort Aguada", Date: "2025-06-02", Time: "11:00", Category: domain.CategoryAccommodation},
	)
	return trip
}

func validItineraryBody() GenerateItineraryRequest {
	return GenerateItineraryRequest{
		Destination:        "Goa",
		StartDate:          "2025-06-01",
		EndDate:            "2025-06-02",
		PartySize:          2,
		Budget:             40000,
		AccommodationLabel: "Taj Fort Aguada",
	}
}

// setupTestHandler creates a test Echo instance with all routes registered.
func setupTestHandler(uc usecase.TripPlannerUseCase) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, NewTripHandler(uc))
	return e
}

// makeRequest is a helper to make JSON test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

// =====================================================
// Flight search
// =====================================================

func TestSearchFlights_Success(t *testing.T) {
	var captured domain.FlightSearchCriteria

	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error) {
			captured = criteria
			journey := domain.NewJourney([]domain.FlightLeg{
				{
					CarrierCode:    "AI",
					FlightNumber:   "865",
					Departure:      domain.FlightPoint{AirportCode: "DEL", DateTime: time.Date(2025, 6, 1, 6, 10, 0, 0, time.UTC)},
					Arrival:        domain.FlightPoint{AirportCode: "BOM", DateTime: time.Date(2025, 6, 1, 8, 20, 0, 0, time.UTC)},
					Price:          domain.PriceInfo{Amount: 3000, Currency: "INR"},
					AvailableSeats: 4,
				},
				{
					CarrierCode:    "AI",
					FlightNumber:   "661",
					Departure:      domain.FlightPoint{AirportCode: "BOM", DateTime: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)},
					Arrival:        domain.FlightPoint{AirportCode: "GOI", DateTime: time.Date(2025, 6, 1, 10, 40, 0, 0, time.UTC)},
					Price:          domain.PriceInfo{Amount: 3120.5, Currency: "INR"},
					AvailableSeats: 7,
				},
			})
			resp := domain.NewFlightSearchResponse(domain.SearchCriteriaResponse{
				Origin:          criteria.Origin,
				OriginCode:      "DEL",
				Destination:     criteria.Destination,
				DestinationCode: "GOI",
				DepartureDate:   criteria.DepartureDate,
				Passengers:      criteria.Passengers,
			}, []domain.Journey{journey}, domain.SearchMetadata{Provider: "amadeus", TotalLegs: 2, TotalJourneys: 1})
			return &resp, nil
		},
	}

	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin:        " Delhi ",
		Destination:   "Goa",
		DepartureDate: "2025-06-01",
		Passengers:    2,
		Filters: &FilterDTO{
			MaxStops: intPtr(1),
			Carriers: []string{"ai"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "Delhi", captured.Origin)
	assert.Equal(t, "Goa", captured.Destination)
	require.NotNil(t, captured.Filter)
	assert.Equal(t, 1, *captured.Filter.MaxStops)
	assert.Equal(t, []string{"AI"}, captured.Filter.Carriers)

	var body FlightSearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DEL", body.SearchCriteria.OriginCode)
	assert.Equal(t, "GOI", body.SearchCriteria.DestinationCode)
	assert.Equal(t, 1, body.Metadata.ReturnedJourneys)
	require.Len(t, body.Journeys, 1)

	j := body.Journeys[0]
	assert.Equal(t, 1, j.Stops)
	assert.Equal(t, 4, j.MinSeats)
	assert.InDelta(t, 6120.5, j.TotalPrice.Amount, 0.001)
	require.Len(t, j.Legs, 2)
	assert.Equal(t, "AI 865", j.Legs[0].FlightNumber)
	assert.Equal(t, "2025-06-01T06:10:00", j.Legs[0].Departure.DateTime)
	assert.Equal(t, "GOI", j.Legs[1].Arrival.Airport)

	assert.Contains(t, rec.Body.String(), `"search_criteria"`)
	assert.Contains(t, rec.Body.String(), `"total_price"`)
}

func TestSearchFlights_EmptyResults(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin:        "DEL",
		Destination:   "GOI",
		DepartureDate: "2025-06-01",
		Passengers:    1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"journeys":[]`)
}

func TestSearchFlights_InvalidJSON(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", strings.NewReader(`{"origin": `))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
	assert.Equal(t, response.MsgInvalidRequestBody, detail.Message)
}

func TestSearchFlights_ValidationDetails(t *testing.T) {
	called := false
	e := setupTestHandler(&mockUseCase{
		searchFunc: func(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error) {
			called = true
			return nil, nil
		},
	})

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", SearchFlightsRequest{
		Origin:        "Goa",
		Destination:   "goa",
		DepartureDate: "2025-13-01",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "use case must not run for invalid input")

	detail := decodeError(t, rec)
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "destination")
	assert.Contains(t, detail.Details, "departureDate")
	assert.Contains(t, detail.Details, "passengers")
}

// =====================================================
// Error mapping
// =====================================================

func TestHandleError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "domain validation",
			err:        domain.WrapInvalidRequest("origin and destination resolve to the same airport %s", "GOI"),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "retries exhausted",
			err:        domain.NewExhaustedRetriesError("flight search", 3, domain.NewTransientUpstreamError("flight-offers", 503, "")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeRetriesExhausted,
		},
		{
			name:       "auth failure",
			err:        domain.NewAuthError("amadeus", domain.NewUpstreamError("token", 401, "invalid_client", nil)),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "provider data",
			err:        domain.NewProviderDataError("amadeus", "[477] INVALID FORMAT"),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "itinerary format",
			err:        domain.NewItineraryFormatError("decode day plan", errors.New("unexpected end of JSON input")),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "plain upstream error",
			err:        domain.NewUpstreamError("flight-offers", 500, "", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "single call timed out",
			err:        domain.NewUpstreamError("amadeus flight-offers", 0, "", context.DeadlineExceeded),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "wrapped call timeout",
			err:        fmt.Errorf("fetch forecast: %w", domain.NewUpstreamError("weather forecast", 0, "", context.DeadlineExceeded)),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeUpstreamError,
		},
		{
			name:       "operation deadline",
			err:        fmt.Errorf("search flights: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "deadline",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancelled",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupTestHandler(&mockUseCase{
				generateFunc: func(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error) {
					return nil, tt.err
				},
			})

			rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries", validItineraryBody())

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotContains(t, detail.Message, "invalid_client", "upstream payloads stay out of responses")
		})
	}
}

// =====================================================
// Itineraries
// =====================================================

func TestGenerateItinerary_Success(t *testing.T) {
	var captured domain.ItineraryRequest
	e := setupTestHandler(&mockUseCase{
		generateFunc: func(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error) {
			captured = req
			return sampleTrip(), nil
		},
	})

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries", validItineraryBody())

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Taj Fort Aguada", captured.AccommodationLabel)
	assert.Equal(t, 2, captured.PartySize)

	var body TripDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trip-123", body.ID)
	require.Len(t, body.Itinerary, 3)
	assert.Equal(t, "Check-in at Taj Fort Aguada", body.Itinerary[0].Activity)
	assert.Equal(t, "Sightseeing", body.Itinerary[1].Category)
	assert.Equal(t, "Check-out from Taj Fort Aguada", body.Itinerary[2].Activity)
}

func TestGenerateItinerary_ValidationError(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := validItineraryBody()
	body.EndDate = "2025-05-01"
	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "endDate")
}

func TestExportItineraryPDF_Success(t *testing.T) {
	var rendered *domain.Trip
	e := setupTestHandler(&mockUseCase{
		renderFunc: func(trip *domain.Trip) ([]byte, error) {
			rendered = trip
			return []byte("%PDF-1.3 itinerary"), nil
		},
	})

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/pdf", validItineraryBody())

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, rendered)
	assert.Equal(t, "trip-123", rendered.ID)
	assert.Equal(t, response.MIMEApplicationPDF, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="itinerary-goa-2025-06-01.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.3 itinerary", rec.Body.String())
}

func TestExportItineraryPDF_Errors(t *testing.T) {
	t.Run("generation fails", func(t *testing.T) {
		renderCalled := false
		e := setupTestHandler(&mockUseCase{
			generateFunc: func(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error) {
				return nil, domain.NewItineraryFormatError("decode day plan", errors.New("bad json"))
			},
			renderFunc: func(trip *domain.Trip) ([]byte, error) {
				renderCalled = true
				return nil, nil
			},
		})

		rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/pdf", validItineraryBody())

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.False(t, renderCalled)
	})

	t.Run("render fails", func(t *testing.T) {
		e := setupTestHandler(&mockUseCase{
			renderFunc: func(trip *domain.Trip) ([]byte, error) {
				return nil, errors.New("font missing")
			},
		})

		rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/pdf", validItineraryBody())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, response.CodeInternalError, decodeError(t, rec).Code)
	})
}

func TestPdfFilename(t *testing.T) {
	tests := []struct {
		destination string
		want        string
	}{
		{destination: "Goa", want: "itinerary-goa-2025-06-01.pdf"},
		{destination: "New Delhi", want: "itinerary-new-delhi-2025-06-01.pdf"},
		{destination: " Leh, Ladakh ", want: "itinerary-leh--ladakh-2025-06-01.pdf"},
		{destination: "---", want: "itinerary-trip-2025-06-01.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.destination, func(t *testing.T) {
			trip := domain.NewTrip("t", tt.destination, "2025-06-01", "2025-06-02", 1, 0)
			assert.Equal(t, tt.want, pdfFilename(trip))
		})
	}
}

// =====================================================
// Hotels and weather
// =====================================================

func TestSuggestHotels_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{
		hotelsFunc: func(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error) {
			assert.Equal(t, "Jaipur", criteria.City)
			return []domain.Hotel{
				{Name: "Rambagh Palace", City: "Jaipur", TotalStayCost: 54000, StarRating: 5},
				{Name: "Hotel Pearl Palace", City: "Jaipur", TotalStayCost: 7500, StarRating: 3},
			}, nil
		},
	})

	rec := makeRequest(e, http.MethodPost, "/api/v1/hotels/suggest", SuggestHotelsRequest{
		City: " Jaipur", CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body HotelSuggestionsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jaipur", body.City)
	assert.Equal(t, 2, body.Guests)
	require.Len(t, body.Hotels, 2)
	assert.Equal(t, "Rambagh Palace", body.Hotels[0].Name)
	assert.InDelta(t, 7500, body.Hotels[1].TotalStayCost, 0.001)
}

func TestSuggestHotels_FormatError(t *testing.T) {
	e := setupTestHandler(&mockUseCase{
		hotelsFunc: func(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error) {
			return nil, domain.ErrSuggestionFormat
		},
	})

	rec := makeRequest(e, http.MethodPost, "/api/v1/hotels/suggest", SuggestHotelsRequest{
		City: "Jaipur", CheckIn: "2025-06-01", CheckOut: "2025-06-04", Guests: 2,
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Generated hotel suggestions could not be read", decodeError(t, rec).Message)
}

func TestForecast(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantDays   int
		wantField  string
	}{
		{name: "default days", query: "city=Goa", wantStatus: http.StatusOK, wantDays: DefaultForecastDays},
		{name: "explicit days", query: "city=Goa&days=7", wantStatus: http.StatusOK, wantDays: 7},
		{name: "missing city", query: "days=2", wantStatus: http.StatusBadRequest, wantField: "city"},
		{name: "days out of range", query: "city=Goa&days=15", wantStatus: http.StatusBadRequest, wantField: "days"},
		{name: "days not a number", query: "city=Goa&days=week", wantStatus: http.StatusBadRequest, wantField: "days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDays int
			e := setupTestHandler(&mockUseCase{
				forecastFunc: func(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
					gotDays = days
					out := make([]domain.ForecastDay, days)
					for i := range out {
						out[i] = domain.ForecastDay{Date: "2025-06-01", MaxTempC: 31, MinTempC: 26, Condition: "Sunny"}
					}
					return out, nil
				},
			})

			rec := makeRequest(e, http.MethodGet, "/api/v1/weather?"+tt.query, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantField != "" {
				assert.Contains(t, decodeError(t, rec).Details, tt.wantField)
				return
			}

			assert.Equal(t, tt.wantDays, gotDays)
			var body ForecastResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Goa", body.City)
			assert.Len(t, body.Forecast, tt.wantDays)
		})
	}
}

func TestForecast_UpstreamExhausted(t *testing.T) {
	e := setupTestHandler(&mockUseCase{
		forecastFunc: func(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
			return nil, domain.NewExhaustedRetriesError("weather forecast", 3, domain.NewTransientUpstreamError("forecast", 503, ""))
		},
	})

	rec := makeRequest(e, http.MethodGet, "/api/v1/weather?city=Goa", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, response.CodeRetriesExhausted, decodeError(t, rec).Code)
}

// =====================================================
// Health and routes
// =====================================================

func TestHealth_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, NewTripHandler(&mockUseCase{}))

	expected := []struct{ method, path string }{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/api/v1/flights/search"},
		{http.MethodPost, "/api/v1/itineraries"},
		{http.MethodPost, "/api/v1/itineraries/pdf"},
		{http.MethodPost, "/api/v1/hotels/suggest"},
		{http.MethodGet, "/api/v1/weather"},
	}

	routes := e.Routes()
	for _, want := range expected {
		found := false
		for _, r := range routes {
			if r.Path == want.path && r.Method == want.method {
				found = true
				break
			}
		}
		assert.True(t, found, "expected route %s %s not found", want.method, want.path)
	}
}

func TestRegisterRoutesWithMiddleware_SkipsHealth(t *testing.T) {
	hits := 0
	counter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	}

	e := echo.New()
	RegisterRoutesWithMiddleware(e, NewTripHandler(&mockUseCase{}), counter)

	makeRequest(e, http.MethodGet, "/health", nil)
	assert.Equal(t, 0, hits)

	makeRequest(e, http.MethodGet, "/api/v1/weather?city=Goa", nil)
	assert.Equal(t, 1, hits)
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
