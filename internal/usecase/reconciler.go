package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

const fence = "```"

// Fixed times of day for generated itinerary entries.
const (
	checkInTime     = "14:00"
	checkOutTime    = "11:00"
	sightseeingTime = "10:00"
	informationTime = "10:30"
	transportTime   = "09:30"
)

// RawDayPlan is the structure the model is asked to return for an itinerary.
type RawDayPlan struct {
	Destination string          `json:"destination"`
	Itinerary   json.RawMessage `json:"itinerary"`
}

// RawDayEntry is one day of a RawDayPlan.
type RawDayEntry struct {
	Date      string `json:"date"`
	Place     string `json:"place"`
	FamousFor string `json:"famous_for"`
	HowToGo   string `json:"how_to_go"`
}

// Unwrap strips surrounding whitespace and, when the text opens with a code
// fence, returns the content between the first and last fence without an
// optional language tag such as "json".
func Unwrap(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	last := strings.LastIndex(text, fence)
	if last <= 0 {
		return strings.TrimSpace(strings.TrimPrefix(text, fence))
	}

	inner := text[len(fence):last]
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 && isLanguageTag(inner[:nl]) {
		inner = inner[nl+1:]
	}

	return strings.TrimSpace(inner)
}

func isLanguageTag(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

// Reconcile converts AI itinerary text into ordered entries: a check-in on
// startDate, then for each day a sightseeing, information and transport entry
// for whichever of place, famous_for and how_to_go is non-empty, then a
// check-out on endDate. Text that is not a JSON object is an
// ItineraryFormatError; a missing itinerary array yields only the two anchors.
// Day entries that do not decode are skipped.
func Reconcile(text, startDate, endDate, checkInLabel, checkOutLabel string) ([]domain.ItineraryEntry, error) {
	var plan RawDayPlan
	if err := json.Unmarshal([]byte(Unwrap(text)), &plan); err != nil {
		return nil, domain.NewItineraryFormatError("decode day plan", err)
	}

	var elements []json.RawMessage
	if raw := bytes.TrimSpace(plan.Itinerary); len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, domain.NewItineraryFormatError("decode itinerary days", err)
		}
	}

	days := make([]RawDayEntry, 0, len(elements))
	for _, el := range elements {
		var day RawDayEntry
		if err := json.Unmarshal(el, &day); err != nil {
			continue
		}
		days = append(days, day)
	}

	entries := make([]domain.ItineraryEntry, 0, len(days)*3+2)
	entries = append(entries, domain.ItineraryEntry{
		Activity: "Check-in at " + checkInLabel,
		Date:     startDate,
		Time:     checkInTime,
		Category: domain.CategoryAccommodation,
	})

	for _, day := range days {
		if day.Place != "" {
			entries = append(entries, domain.ItineraryEntry{
				Activity: "Visit " + day.Place,
				Date:     day.Date,
				Time:     sightseeingTime,
				Category: domain.CategorySightseeing,
			})
		}
		if day.FamousFor != "" {
			entries = append(entries, domain.ItineraryEntry{
				Activity: day.FamousFor,
				Date:     day.Date,
				Time:     informationTime,
				Category: domain.CategoryInformation,
			})
		}
		if day.HowToGo != "" {
			entries = append(entries, domain.ItineraryEntry{
				Activity: "Transportation: " + day.HowToGo,
				Date:     day.Date,
				Time:     transportTime,
				Category: domain.CategoryTransport,
			})
		}
	}

	entries = append(entries, domain.ItineraryEntry{
		Activity: "Check-out from " + checkOutLabel,
		Date:     endDate,
		Time:     checkOutTime,
		Category: domain.CategoryAccommodation,
	})

	return entries, nil
}
