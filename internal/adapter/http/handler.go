package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/trip-planner-service/internal/adapter/http/response"
	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
	"github.com/trip-planner/trip-planner-service/internal/usecase"
)

// TripHandler handles HTTP requests for the trip planner endpoints.
type TripHandler struct {
	useCase usecase.TripPlannerUseCase
}

// NewTripHandler creates a new TripHandler with the given use case.
func NewTripHandler(uc usecase.TripPlannerUseCase) *TripHandler {
	return &TripHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Resolve both cities to airports and return the cheapest connecting journeys
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} FlightSearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Retries exhausted"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *TripHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.SearchFlights(c.Request().Context(), ToDomainFlightCriteria(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFlightSearchResponseDTO(result))
}

// GenerateItinerary handles POST /api/v1/itineraries
//
// @Summary Generate an itinerary
// @Description Plan a day-by-day itinerary anchored by check-in and check-out
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body GenerateItineraryRequest true "Trip details"
// @Success 201 {object} TripDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Retries exhausted"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries [post]
func (h *TripHandler) GenerateItinerary(c echo.Context) error {
	trip, err := h.generateTrip(c)
	if err != nil {
		return err
	}
	if trip == nil {
		// response already written
		return nil
	}

	return response.Created(c, ToTripDTO(trip))
}

// ExportItineraryPDF handles POST /api/v1/itineraries/pdf
//
// @Summary Generate an itinerary as PDF
// @Description Plan an itinerary and download it as a PDF document
// @Tags itineraries
// @Accept json
// @Produce application/pdf
// @Param request body GenerateItineraryRequest true "Trip details"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Retries exhausted"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/pdf [post]
func (h *TripHandler) ExportItineraryPDF(c echo.Context) error {
	trip, err := h.generateTrip(c)
	if err != nil {
		return err
	}
	if trip == nil {
		return nil
	}

	doc, err := h.useCase.RenderItineraryPDF(trip)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PDFAttachment(c, pdfFilename(trip), doc)
}

// generateTrip binds, validates and runs itinerary generation. A nil trip
// with a nil error means an error response has been written.
func (h *TripHandler) generateTrip(c echo.Context) (*domain.Trip, error) {
	var req GenerateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return nil, h.handleValidationError(c, err)
	}

	trip, err := h.useCase.GenerateItinerary(c.Request().Context(), ToDomainItineraryRequest(&req))
	if err != nil {
		return nil, h.handleError(c, err)
	}
	return trip, nil
}

// SuggestHotels handles POST /api/v1/hotels/suggest
//
// @Summary Suggest hotels
// @Description Suggest hotels for a stay with total cost and star rating
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body SuggestHotelsRequest true "Stay details"
// @Success 200 {object} HotelSuggestionsDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Retries exhausted"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/hotels/suggest [post]
func (h *TripHandler) SuggestHotels(c echo.Context) error {
	var req SuggestHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainHotelCriteria(&req)
	hotels, err := h.useCase.SuggestHotels(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToHotelSuggestionsDTO(criteria, hotels))
}

// Forecast handles GET /api/v1/weather
//
// @Summary Weather forecast
// @Description Daily forecast for a city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param days query int false "Number of days (1-14)" default(3)
// @Success 200 {object} ForecastResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream error"
// @Failure 503 {object} response.ErrorDetail "Retries exhausted"
// @Router /api/v1/weather [get]
func (h *TripHandler) Forecast(c echo.Context) error {
	q := ForecastQuery{Days: DefaultForecastDays}
	err := echo.QueryParamsBinder(c).
		String("city", &q.City).
		Int("days", &q.Days).
		BindError()
	if err != nil {
		return response.ValidationError(c, map[string]string{"days": "days must be an integer"})
	}
	if err := q.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	days, err := h.useCase.Forecast(c.Request().Context(), q.City, q.Days)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToForecastResponseDTO(q.City, days))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, domain.ErrExhaustedRetries):
		logger.FromContext(ctx).Warn().Err(err).Msg("upstream stayed unavailable")
		return response.RetriesExhausted(c)

	// A single call that timed out is still an upstream failure; only the
	// operation deadline maps to 504.
	case errors.Is(err, domain.ErrAuth),
		errors.Is(err, domain.ErrProviderData),
		errors.Is(err, domain.ErrItineraryFormat),
		errors.Is(err, domain.ErrSuggestionFormat),
		errors.Is(err, domain.ErrUpstream),
		errors.Is(err, domain.ErrTransientUpstream):
		logger.FromContext(ctx).Error().Err(err).Msg("upstream failure")
		return response.BadGatewayWithMessage(c, upstreamMessage(err))

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	logger.FromContext(ctx).Error().Err(err).Msg("unhandled error")
	return response.InternalServerError(c)
}

// upstreamMessage names the failing dependency without leaking its payload.
func upstreamMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuth):
		return "Flight provider rejected the service credentials"
	case errors.Is(err, domain.ErrItineraryFormat):
		return "Generated itinerary could not be read"
	case errors.Is(err, domain.ErrSuggestionFormat):
		return "Generated hotel suggestions could not be read"
	case errors.Is(err, domain.ErrProviderData):
		return "Upstream provider reported an error"
	default:
		return response.MsgUpstreamError
	}
}

// pdfFilename builds a download name such as itinerary-goa-2025-06-01.pdf.
func pdfFilename(trip *domain.Trip) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(trip.Destination))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "trip"
	}
	return fmt.Sprintf("itinerary-%s-%s.pdf", slug, trip.StartDate)
}
