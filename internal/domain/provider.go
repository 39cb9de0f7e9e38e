package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// FlightOfferProvider retrieves normalized flight legs from a GDS.
// Implementations own authentication and the shared retry policy;
// callers must not retry on their own.
type FlightOfferProvider interface {
	// Name returns the unique identifier for this provider.
	Name() string

	// SearchOffers returns legs ordered by offer price, cheapest first.
	// Origin and destination must be IATA airport codes.
	SearchOffers(ctx context.Context, origin, destination, date string, passengers int) ([]FlightLeg, error)
}

// TextGenerator produces free-form text from a prompt using an AI model.
type TextGenerator interface {
	// Name returns the unique identifier for this provider.
	Name() string

	// GenerateText sends the prompt and returns the model's text answer.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// WeatherProvider retrieves daily weather forecasts.
type WeatherProvider interface {
	// Forecast returns one entry per day, starting today.
	Forecast(ctx context.Context, city string, days int) ([]ForecastDay, error)
}

// ItineraryRenderer renders a trip as a printable document.
type ItineraryRenderer interface {
	Render(trip *Trip) ([]byte, error)
}
