package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// rawHotel is one element of the suggestion array the model is asked for.
type rawHotel struct {
	HotelName     string         `json:"hotel_name"`
	StarRating    flexibleNumber `json:"star_rating"`
	TotalStayCost flexibleNumber `json:"total_stay_cost"`
	Address       string         `json:"address"`
}

// flexibleNumber accepts a JSON number or a string such as "4.5" or
// "INR 12,500". Anything else leaves it unset.
type flexibleNumber struct {
	Value float64
	Set   bool
}

func (n *flexibleNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] != '"' {
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		n.Value, n.Set = v, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	n.Value, n.Set = v, true
	return nil
}

// ParseHotelSuggestions decodes the AI hotel suggestion text. The text is
// unwrapped like an itinerary and must be a JSON array. Elements that do not
// decode or lack a name, rating or cost are skipped.
func ParseHotelSuggestions(text string, criteria domain.HotelSearchCriteria) ([]domain.Hotel, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(Unwrap(text)), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSuggestionFormat, err)
	}

	hotels := make([]domain.Hotel, 0, len(elements))
	for _, el := range elements {
		var raw rawHotel
		if err := json.Unmarshal(el, &raw); err != nil {
			continue
		}
		name := strings.TrimSpace(raw.HotelName)
		if name == "" || !raw.StarRating.Set || !raw.TotalStayCost.Set {
			continue
		}

		hotels = append(hotels, domain.Hotel{
			Name:          name,
			City:          criteria.City,
			TotalStayCost: raw.TotalStayCost.Value,
			StarRating:    raw.StarRating.Value,
			Address:       strings.TrimSpace(raw.Address),
			CheckInDate:   criteria.CheckIn,
			CheckOutDate:  criteria.CheckOut,
		})
	}

	return hotels, nil
}
