package amadeus

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// DefaultMaxOffers is how many of the cheapest offers are turned into legs.
const DefaultMaxOffers = 10

// defaultBookableSeats is used when an offer omits numberOfBookableSeats.
const defaultBookableSeats = 1

// Normalize decodes a flight-offers body into legs, cheapest offer first.
// Only the first itinerary of each of the maxOffers cheapest offers is used,
// and every leg carries its offer's total price and seat count.
func Normalize(raw []byte, maxOffers int) ([]domain.FlightLeg, error) {
	var env RawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, domain.NewProviderDataError(ProviderName, fmt.Sprintf("decode flight offers: %v", err))
	}

	if len(env.Errors) > 0 && len(env.Data) == 0 {
		return nil, domain.NewProviderDataError(ProviderName, describeErrors(env.Errors))
	}

	return normalizeOffers(env.Data, maxOffers), nil
}

type pricedOffer struct {
	offer RawOffer
	total float64
}

func normalizeOffers(offers []RawOffer, maxOffers int) []domain.FlightLeg {
	if maxOffers <= 0 {
		maxOffers = DefaultMaxOffers
	}

	priced := make([]pricedOffer, 0, len(offers))
	for _, o := range offers {
		total, err := strconv.ParseFloat(strings.TrimSpace(o.Price.Total), 64)
		if err != nil || total < 0 {
			continue
		}
		priced = append(priced, pricedOffer{offer: o, total: total})
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].total < priced[j].total
	})

	if len(priced) > maxOffers {
		priced = priced[:maxOffers]
	}

	legs := make([]domain.FlightLeg, 0, len(priced))
	for _, p := range priced {
		if len(p.offer.Itineraries) == 0 {
			continue
		}

		seats := defaultBookableSeats
		if p.offer.NumberOfBookableSeats != nil {
			seats = *p.offer.NumberOfBookableSeats
		}
		if seats < 0 {
			seats = 0
		}

		price := domain.PriceInfo{Amount: p.total, Currency: p.offer.Price.Currency}

		for _, seg := range p.offer.Itineraries[0].Segments {
			leg, err := normalizeSegment(seg, price, seats)
			if err != nil {
				continue
			}
			legs = append(legs, leg)
		}
	}

	return legs
}

func normalizeSegment(seg RawSegment, price domain.PriceInfo, seats int) (domain.FlightLeg, error) {
	if seg.CarrierCode == "" || seg.Number == "" {
		return domain.FlightLeg{}, fmt.Errorf("segment is missing carrier or number")
	}
	if seg.Departure.IataCode == "" || seg.Arrival.IataCode == "" {
		return domain.FlightLeg{}, fmt.Errorf("segment is missing an airport code")
	}

	departure, err := parseDateTime(seg.Departure.At)
	if err != nil {
		return domain.FlightLeg{}, fmt.Errorf("failed to parse departure time: %w", err)
	}
	arrival, err := parseDateTime(seg.Arrival.At)
	if err != nil {
		return domain.FlightLeg{}, fmt.Errorf("failed to parse arrival time: %w", err)
	}

	return domain.FlightLeg{
		CarrierCode:  seg.CarrierCode,
		FlightNumber: seg.Number,
		Departure: domain.FlightPoint{
			AirportCode: seg.Departure.IataCode,
			DateTime:    departure,
		},
		Arrival: domain.FlightPoint{
			AirportCode: seg.Arrival.IataCode,
			DateTime:    arrival,
		},
		Price:          price,
		AvailableSeats: seats,
	}, nil
}

// parseDateTime parses a local ISO 8601 timestamp.
// Supports formats: "2006-01-02T15:04:05" and "2006-01-02T15:04:05Z07:00"
func parseDateTime(dateTime string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05", dateTime)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, dateTime)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", dateTime)
}

// describeErrors joins provider errors as "[code] title: detail".
func describeErrors(errs []RawProviderError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("[%d] %s", e.Code, e.Title)
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
