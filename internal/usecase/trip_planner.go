package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-planner/trip-planner-service/internal/domain"
	"github.com/trip-planner/trip-planner-service/internal/infrastructure/logger"
)

// TripPlannerUseCase defines the trip planning operations.
type TripPlannerUseCase interface {
	// SearchFlights resolves both cities to airports, fetches offers and
	// returns the cheapest connecting journeys.
	SearchFlights(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error)

	// GenerateItinerary asks the text generator for a day plan and returns a
	// trip whose itinerary is anchored by check-in and check-out entries.
	GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error)

	// SuggestHotels asks the text generator for hotel suggestions.
	SuggestHotels(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error)

	// Forecast returns the daily forecast for a city, 1 to 14 days.
	Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error)

	// RenderItineraryPDF renders a trip as a PDF document.
	RenderItineraryPDF(trip *domain.Trip) ([]byte, error)
}

// tripPlannerUseCase runs every operation serially; retries live in the adapters.
type tripPlannerUseCase struct {
	flights  domain.FlightOfferProvider
	text     domain.TextGenerator
	weather  domain.WeatherProvider
	renderer domain.ItineraryRenderer
	cfg      Config
	newID    func() string
}

// Dependencies groups the ports the trip planner calls.
type Dependencies struct {
	Flights  domain.FlightOfferProvider
	Text     domain.TextGenerator
	Weather  domain.WeatherProvider
	Renderer domain.ItineraryRenderer
}

// NewTripPlannerUseCase creates a new TripPlannerUseCase.
// If config is nil, default values are used.
func NewTripPlannerUseCase(deps Dependencies, config *Config) TripPlannerUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxJourneyOptions > 0 {
			cfg.MaxJourneyOptions = config.MaxJourneyOptions
		}
		if config.OperationTimeout > 0 {
			cfg.OperationTimeout = config.OperationTimeout
		}
	}

	return &tripPlannerUseCase{
		flights:  deps.Flights,
		text:     deps.Text,
		weather:  deps.Weather,
		renderer: deps.Renderer,
		cfg:      cfg,
		newID:    uuid.NewString,
	}
}

// SearchFlights implements TripPlannerUseCase.SearchFlights.
func (uc *tripPlannerUseCase) SearchFlights(ctx context.Context, criteria domain.FlightSearchCriteria) (*domain.FlightSearchResponse, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	log := logger.FromContext(ctx).WithOperation("search flights")

	originCode, err := ResolveAirport(ctx, uc.text, criteria.Origin)
	if err != nil {
		return nil, err
	}
	destinationCode, err := ResolveAirport(ctx, uc.text, criteria.Destination)
	if err != nil {
		return nil, err
	}
	if originCode == destinationCode {
		return nil, domain.WrapInvalidRequest("origin and destination resolve to the same airport %s", originCode)
	}

	legs, err := uc.flights.SearchOffers(ctx, originCode, destinationCode, criteria.DepartureDate, criteria.Passengers)
	if err != nil {
		return nil, err
	}

	journeys := GroupJourneys(legs)
	filtered := ApplyJourneyFilter(journeys, criteria.Filter)
	options := TopOptions(filtered, uc.cfg.MaxJourneyOptions)

	log.Info().
		Str("origin", originCode).
		Str("destination", destinationCode).
		Int("legs", len(legs)).
		Int("journeys", len(journeys)).
		Int("returned", len(options)).
		Msg("Flight search completed")

	resp := domain.NewFlightSearchResponse(
		domain.SearchCriteriaResponse{
			Origin:          criteria.Origin,
			OriginCode:      originCode,
			Destination:     criteria.Destination,
			DestinationCode: destinationCode,
			DepartureDate:   criteria.DepartureDate,
			Passengers:      criteria.Passengers,
		},
		options,
		domain.SearchMetadata{
			Provider:      uc.flights.Name(),
			TotalLegs:     len(legs),
			TotalJourneys: len(journeys),
			SearchTimeMs:  time.Since(startTime).Milliseconds(),
		},
	)

	return &resp, nil
}

// GenerateItinerary implements TripPlannerUseCase.GenerateItinerary.
func (uc *tripPlannerUseCase) GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (*domain.Trip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	prompt, err := buildPrompt("itinerary", itineraryPrompt, itineraryPromptData{
		Days:        req.Days(),
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PartySize:   req.PartySize,
		Budget:      req.Budget,
	})
	if err != nil {
		return nil, err
	}

	text, err := uc.text.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	label := strings.TrimSpace(req.AccommodationLabel)
	entries, err := Reconcile(text, req.StartDate, req.EndDate, label, label)
	if err != nil {
		return nil, err
	}

	trip := domain.NewTrip(uc.newID(), req.Destination, req.StartDate, req.EndDate, req.PartySize, req.Budget)
	trip.AddItineraryEntries(entries...)

	logger.FromContext(ctx).WithOperation("generate itinerary").Info().
		Str("trip_id", trip.ID).
		Str("destination", trip.Destination).
		Int("entries", len(trip.Itinerary)).
		Msg("Itinerary generated")

	return trip, nil
}

// SuggestHotels implements TripPlannerUseCase.SuggestHotels.
func (uc *tripPlannerUseCase) SuggestHotels(ctx context.Context, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	prompt, err := buildPrompt("hotel", hotelPrompt, hotelPromptData{
		City:     criteria.City,
		CheckIn:  criteria.CheckIn,
		CheckOut: criteria.CheckOut,
		Guests:   criteria.Guests,
	})
	if err != nil {
		return nil, err
	}

	text, err := uc.text.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("suggest hotels: %w", err)
	}

	return ParseHotelSuggestions(text, criteria)
}

// Forecast implements TripPlannerUseCase.Forecast.
func (uc *tripPlannerUseCase) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.NewValidationError("city", "is required")
	}
	if days < 1 || days > MaxForecastDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", MaxForecastDays))
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OperationTimeout)
	defer cancel()

	return uc.weather.Forecast(ctx, city, days)
}

// RenderItineraryPDF implements TripPlannerUseCase.RenderItineraryPDF.
func (uc *tripPlannerUseCase) RenderItineraryPDF(trip *domain.Trip) ([]byte, error) {
	if trip == nil {
		return nil, domain.WrapInvalidRequest("trip is required")
	}
	return uc.renderer.Render(trip)
}

// Ensure tripPlannerUseCase implements TripPlannerUseCase at compile time.
var _ TripPlannerUseCase = (*tripPlannerUseCase)(nil)
