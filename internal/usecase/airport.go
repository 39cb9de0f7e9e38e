package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// ResolveAirport returns the IATA code for a city. Input that already is an
// upper-case three-letter code is returned as is; anything else is looked up
// with the text generator, whose answer must be exactly one such code once
// whitespace is removed.
func ResolveAirport(ctx context.Context, gen domain.TextGenerator, city string) (string, error) {
	city = strings.TrimSpace(city)
	if domain.IsAirportCode(city) {
		return city, nil
	}

	prompt, err := buildPrompt("airport", airportPrompt, airportPromptData{City: city})
	if err != nil {
		return "", err
	}

	answer, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("resolve airport for %q: %w", city, err)
	}

	code := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, answer)
	if !domain.IsAirportCode(code) {
		return "", domain.NewProviderDataError(gen.Name(), fmt.Sprintf("invalid IATA code %q for city %q", code, city))
	}

	return code, nil
}
