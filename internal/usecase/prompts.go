package usecase

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed itinerary_prompt.md
var itineraryPrompt string

//go:embed hotel_prompt.md
var hotelPrompt string

//go:embed airport_prompt.md
var airportPrompt string

type itineraryPromptData struct {
	Days        int
	Destination string
	StartDate   string
	EndDate     string
	PartySize   int
	Budget      float64
}

type hotelPromptData struct {
	City     string
	CheckIn  string
	CheckOut string
	Guests   int
}

type airportPromptData struct {
	City string
}

func buildPrompt(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s prompt: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}

	return buf.String(), nil
}
