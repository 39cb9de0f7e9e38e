// Package mock provides test doubles for the trip planner ports.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted answers).
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// FlightProvider is a configurable mock implementation of domain.FlightOfferProvider.
type FlightProvider struct {
	name      string
	legs      []domain.FlightLeg
	err       error
	delay     time.Duration
	callCount int
	lastQuery Query
	mu        sync.Mutex
}

// Query records the arguments of a SearchOffers call.
type Query struct {
	Origin      string
	Destination string
	Date        string
	Passengers  int
}

// NewFlightProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewFlightProvider(name string) *FlightProvider {
	return &FlightProvider{name: name}
}

// WithLegs configures the provider to return the given legs.
func (p *FlightProvider) WithLegs(legs []domain.FlightLeg) *FlightProvider {
	p.legs = legs
	return p
}

// WithError configures the provider to return the given error.
func (p *FlightProvider) WithError(err error) *FlightProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
func (p *FlightProvider) WithDelay(d time.Duration) *FlightProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *FlightProvider) Name() string {
	return p.name
}

// SearchOffers implements domain.FlightOfferProvider.SearchOffers.
func (p *FlightProvider) SearchOffers(ctx context.Context, origin, destination, date string, passengers int) ([]domain.FlightLeg, error) {
	p.mu.Lock()
	p.callCount++
	p.lastQuery = Query{Origin: origin, Destination: destination, Date: date, Passengers: passengers}
	p.mu.Unlock()

	if err := wait(ctx, p.delay); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	out := make([]domain.FlightLeg, len(p.legs))
	copy(out, p.legs)
	return out, nil
}

// CallCount returns the number of times SearchOffers was called.
func (p *FlightProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastQuery returns the arguments of the most recent call.
func (p *FlightProvider) LastQuery() Query {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastQuery
}

// Reset resets the call count.
func (p *FlightProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// TextGenerator answers prompts from a script. The first rule whose marker
// is contained in the prompt wins; prompts matching no rule fail.
type TextGenerator struct {
	name    string
	rules   []rule
	err     error
	prompts []string
	mu      sync.Mutex
}

type rule struct {
	marker string
	answer string
	err    error
}

// NewTextGenerator creates a scripted text generator.
func NewTextGenerator(name string) *TextGenerator {
	return &TextGenerator{name: name}
}

// WithAnswer answers prompts containing marker with answer.
func (g *TextGenerator) WithAnswer(marker, answer string) *TextGenerator {
	g.rules = append(g.rules, rule{marker: marker, answer: answer})
	return g
}

// WithAnswerError fails prompts containing marker with err.
func (g *TextGenerator) WithAnswerError(marker string, err error) *TextGenerator {
	g.rules = append(g.rules, rule{marker: marker, err: err})
	return g
}

// WithError fails every prompt with err.
func (g *TextGenerator) WithError(err error) *TextGenerator {
	g.err = err
	return g
}

// Name returns the generator's identifier.
func (g *TextGenerator) Name() string {
	return g.name
}

// GenerateText implements domain.TextGenerator.GenerateText.
func (g *TextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.err != nil {
		return "", g.err
	}

	for _, r := range g.rules {
		if strings.Contains(prompt, r.marker) {
			return r.answer, r.err
		}
	}
	return "", fmt.Errorf("mock %s: no scripted answer for prompt %q", g.name, prompt)
}

// Prompts returns a copy of every prompt received, in call order.
func (g *TextGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, len(g.prompts))
	copy(out, g.prompts)
	return out
}

// CallCount returns the number of prompts received.
func (g *TextGenerator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// WeatherProvider is a configurable mock implementation of domain.WeatherProvider.
type WeatherProvider struct {
	days      []domain.ForecastDay
	err       error
	callCount int
	mu        sync.Mutex
}

// NewWeatherProvider creates a new mock weather provider.
func NewWeatherProvider() *WeatherProvider {
	return &WeatherProvider{}
}

// WithDays configures the forecast days to return.
func (w *WeatherProvider) WithDays(days []domain.ForecastDay) *WeatherProvider {
	w.days = days
	return w
}

// WithError configures the provider to return the given error.
func (w *WeatherProvider) WithError(err error) *WeatherProvider {
	w.err = err
	return w
}

// Forecast implements domain.WeatherProvider.Forecast.
// It returns at most days entries.
func (w *WeatherProvider) Forecast(ctx context.Context, city string, days int) ([]domain.ForecastDay, error) {
	w.mu.Lock()
	w.callCount++
	w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if w.err != nil {
		return nil, w.err
	}
	if days > len(w.days) {
		days = len(w.days)
	}
	return w.days[:days], nil
}

// CallCount returns the number of times Forecast was called.
func (w *WeatherProvider) CallCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.callCount
}

func wait(ctx context.Context, d time.Duration) error {
	if d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return ctx.Err()
}

// SampleDirectLegs returns count non-connecting legs between origin and
// destination, one hour apart and priced from 4000 upwards.
func SampleDirectLegs(carrier, origin, destination string, count int) []domain.FlightLeg {
	base := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)
	legs := make([]domain.FlightLeg, count)
	for i := 0; i < count; i++ {
		dep := base.Add(time.Duration(i) * time.Hour)
		legs[i] = domain.FlightLeg{
			CarrierCode:    carrier,
			FlightNumber:   fmt.Sprintf("%d", 100+i),
			Departure:      domain.FlightPoint{AirportCode: origin, DateTime: dep},
			Arrival:        domain.FlightPoint{AirportCode: destination, DateTime: dep.Add(90 * time.Minute)},
			Price:          domain.PriceInfo{Amount: 4000 + float64(i)*500, Currency: "INR"},
			AvailableSeats: 9 - i%9,
		}
	}
	return legs
}

// SampleConnection returns one journey's legs through the given airports,
// for example SampleConnection("AI", 7420, "BLR", "BOM", "GOI").
func SampleConnection(carrier string, price float64, airports ...string) []domain.FlightLeg {
	base := time.Date(2025, 6, 1, 5, 40, 0, 0, time.UTC)
	legs := make([]domain.FlightLeg, 0, len(airports)-1)
	for i := 0; i+1 < len(airports); i++ {
		dep := base.Add(time.Duration(i) * 3 * time.Hour)
		legs = append(legs, domain.FlightLeg{
			CarrierCode:    carrier,
			FlightNumber:   fmt.Sprintf("%d", 600+i),
			Departure:      domain.FlightPoint{AirportCode: airports[i], DateTime: dep},
			Arrival:        domain.FlightPoint{AirportCode: airports[i+1], DateTime: dep.Add(2 * time.Hour)},
			Price:          domain.PriceInfo{Amount: price, Currency: "INR"},
			AvailableSeats: 3,
		})
	}
	return legs
}

// SampleForecast returns count consecutive forecast days from 2025-06-01.
func SampleForecast(count int) []domain.ForecastDay {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	days := make([]domain.ForecastDay, count)
	for i := range days {
		days[i] = domain.ForecastDay{
			Date:         base.AddDate(0, 0, i).Format("2006-01-02"),
			MaxTempC:     31,
			MinTempC:     26,
			Condition:    "Partly cloudy",
			ChanceOfRain: 20 + i,
		}
	}
	return days
}

var (
	_ domain.FlightOfferProvider = (*FlightProvider)(nil)
	_ domain.TextGenerator       = (*TextGenerator)(nil)
	_ domain.WeatherProvider     = (*WeatherProvider)(nil)
)
