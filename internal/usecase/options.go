// Package usecase contains the trip planning business logic. It resolves
// airports, groups flight legs into journeys and turns AI text into
// itineraries and hotel suggestions.
package usecase

import "time"

// Defaults for the trip planner.
const (
	DefaultMaxJourneyOptions = 5
	DefaultOperationTimeout  = 50 * time.Second
	MaxForecastDays          = 14
)

// Config contains configuration options for the use case.
type Config struct {
	// MaxJourneyOptions caps the journeys returned by a flight search
	MaxJourneyOptions int

	// OperationTimeout bounds one operation, upstream retries included
	OperationTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxJourneyOptions: DefaultMaxJourneyOptions,
		OperationTimeout:  DefaultOperationTimeout,
	}
}
