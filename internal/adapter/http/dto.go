package http

import (
	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// legDateTimeLayout formats leg times; upstream times carry no zone.
const legDateTimeLayout = "2006-01-02T15:04:05"

// FlightSearchResponseDTO is the data transfer object for flight search responses.
// It matches the API output format with snake_case fields.
type FlightSearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Journeys       []JourneyDTO      `json:"journeys"`
}

// SearchCriteriaDTO represents the resolved search criteria in the response.
type SearchCriteriaDTO struct {
	Origin          string `json:"origin" example:"Delhi"`
	OriginCode      string `json:"origin_code" example:"DEL"`
	Destination     string `json:"destination" example:"Goa"`
	DestinationCode string `json:"destination_code" example:"GOI"`
	DepartureDate   string `json:"departure_date" example:"2025-06-01"`
	Passengers      int    `json:"passengers" example:"2"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	Provider         string `json:"provider" example:"amadeus"`
	TotalLegs        int    `json:"total_legs" example:"14"`
	TotalJourneys    int    `json:"total_journeys" example:"8"`
	ReturnedJourneys int    `json:"returned_journeys" example:"5"`
	SearchTimeMs     int64  `json:"search_time_ms" example:"1830"`
}

// JourneyDTO is one bookable chain of connecting legs.
type JourneyDTO struct {
	Legs       []LegDTO `json:"legs"`
	Stops      int      `json:"stops" example:"1"`
	TotalPrice PriceDTO `json:"total_price"`
	MinSeats   int      `json:"min_seats" example:"4"`
}

// LegDTO is a single flight segment.
type LegDTO struct {
	Carrier        string         `json:"carrier" example:"AI"`
	FlightNumber   string         `json:"flight_number" example:"AI 865"`
	Departure      FlightPointDTO `json:"departure"`
	Arrival        FlightPointDTO `json:"arrival"`
	Price          PriceDTO       `json:"price"`
	AvailableSeats int            `json:"available_seats" example:"9"`
}

// FlightPointDTO represents a departure or arrival point.
type FlightPointDTO struct {
	Airport   string `json:"airport" example:"DEL"`
	DateTime  string `json:"datetime" example:"2025-06-01T06:10:00"`
	Timestamp int64  `json:"timestamp" example:"1748758200"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Amount   float64 `json:"amount" example:"6120.5"`
	Currency string  `json:"currency" example:"INR"`
}

// TripDTO is a generated trip with its ordered itinerary.
type TripDTO struct {
	ID          string              `json:"id" example:"0b6f0c8e-4f0a-4e43-9d43-2f1a0c5d7e11"`
	Destination string              `json:"destination" example:"Goa"`
	StartDate   string              `json:"start_date" example:"2025-06-01"`
	EndDate     string              `json:"end_date" example:"2025-06-03"`
	PartySize   int                 `json:"party_size" example:"2"`
	Budget      float64             `json:"budget,omitempty" example:"40000"`
	Itinerary   []ItineraryEntryDTO `json:"itinerary"`
}

// ItineraryEntryDTO is one scheduled activity.
type ItineraryEntryDTO struct {
	Activity string `json:"activity" example:"Visit Fort Aguada"`
	Date     string `json:"date" example:"2025-06-02"`
	Time     string `json:"time" example:"10:00"`
	Category string `json:"category" example:"Sightseeing"`
}

// HotelSuggestionsDTO wraps hotel suggestions for a stay.
type HotelSuggestionsDTO struct {
	City     string     `json:"city" example:"Jaipur"`
	CheckIn  string     `json:"check_in" example:"2025-06-01"`
	CheckOut string     `json:"check_out" example:"2025-06-04"`
	Guests   int        `json:"guests" example:"2"`
	Hotels   []HotelDTO `json:"hotels"`
}

// HotelDTO is a single suggested hotel.
type HotelDTO struct {
	Name          string  `json:"name" example:"Rambagh Palace"`
	Address       string  `json:"address,omitempty" example:"Bhawani Singh Rd, Jaipur"`
	TotalStayCost float64 `json:"total_stay_cost" example:"54000"`
	StarRating    float64 `json:"star_rating" example:"5"`
}

// ForecastResponseDTO wraps a daily forecast.
type ForecastResponseDTO struct {
	City     string           `json:"city" example:"Goa"`
	Days     int              `json:"days" example:"3"`
	Forecast []ForecastDayDTO `json:"forecast"`
}

// ForecastDayDTO is the forecast for one day.
type ForecastDayDTO struct {
	Date         string  `json:"date" example:"2025-06-01"`
	MaxTempC     float64 `json:"max_temp_c" example:"31.4"`
	MinTempC     float64 `json:"min_temp_c" example:"26.1"`
	Condition    string  `json:"condition" example:"Patchy rain nearby"`
	ChanceOfRain int     `json:"chance_of_rain" example:"70"`
}

// ToFlightSearchResponseDTO converts a domain FlightSearchResponse.
func ToFlightSearchResponseDTO(resp *domain.FlightSearchResponse) *FlightSearchResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &FlightSearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:          resp.SearchCriteria.Origin,
			OriginCode:      resp.SearchCriteria.OriginCode,
			Destination:     resp.SearchCriteria.Destination,
			DestinationCode: resp.SearchCriteria.DestinationCode,
			DepartureDate:   resp.SearchCriteria.DepartureDate,
			Passengers:      resp.SearchCriteria.Passengers,
		},
		Metadata: MetadataDTO{
			Provider:         resp.Metadata.Provider,
			TotalLegs:        resp.Metadata.TotalLegs,
			TotalJourneys:    resp.Metadata.TotalJourneys,
			ReturnedJourneys: resp.Metadata.ReturnedJourneys,
			SearchTimeMs:     resp.Metadata.SearchTimeMs,
		},
		Journeys: make([]JourneyDTO, len(resp.Journeys)),
	}

	for i, j := range resp.Journeys {
		dto.Journeys[i] = ToJourneyDTO(j)
	}

	return dto
}

// ToJourneyDTO converts a domain Journey.
func ToJourneyDTO(j domain.Journey) JourneyDTO {
	dto := JourneyDTO{
		Legs:       make([]LegDTO, len(j.Legs)),
		Stops:      j.Stops(),
		TotalPrice: toPriceDTO(j.TotalPrice),
		MinSeats:   j.MinSeats,
	}
	for i, leg := range j.Legs {
		dto.Legs[i] = LegDTO{
			Carrier:        leg.CarrierCode,
			FlightNumber:   leg.Designator(),
			Departure:      toFlightPointDTO(leg.Departure),
			Arrival:        toFlightPointDTO(leg.Arrival),
			Price:          toPriceDTO(leg.Price),
			AvailableSeats: leg.AvailableSeats,
		}
	}
	return dto
}

func toFlightPointDTO(p domain.FlightPoint) FlightPointDTO {
	return FlightPointDTO{
		Airport:   p.AirportCode,
		DateTime:  p.DateTime.Format(legDateTimeLayout),
		Timestamp: p.DateTime.Unix(),
	}
}

func toPriceDTO(p domain.PriceInfo) PriceDTO {
	return PriceDTO{Amount: p.Amount, Currency: p.Currency}
}

// ToTripDTO converts a domain Trip.
func ToTripDTO(trip *domain.Trip) *TripDTO {
	if trip == nil {
		return nil
	}

	dto := &TripDTO{
		ID:          trip.ID,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		PartySize:   trip.PartySize,
		Budget:      trip.Budget,
		Itinerary:   make([]ItineraryEntryDTO, len(trip.Itinerary)),
	}
	for i, e := range trip.Itinerary {
		dto.Itinerary[i] = ItineraryEntryDTO{
			Activity: e.Activity,
			Date:     e.Date,
			Time:     e.Time,
			Category: string(e.Category),
		}
	}
	return dto
}

// ToHotelSuggestionsDTO converts hotel suggestions for the given request.
func ToHotelSuggestionsDTO(criteria domain.HotelSearchCriteria, hotels []domain.Hotel) *HotelSuggestionsDTO {
	dto := &HotelSuggestionsDTO{
		City:     criteria.City,
		CheckIn:  criteria.CheckIn,
		CheckOut: criteria.CheckOut,
		Guests:   criteria.Guests,
		Hotels:   make([]HotelDTO, len(hotels)),
	}
	for i, h := range hotels {
		dto.Hotels[i] = HotelDTO{
			Name:          h.Name,
			Address:       h.Address,
			TotalStayCost: h.TotalStayCost,
			StarRating:    h.StarRating,
		}
	}
	return dto
}

// ToForecastResponseDTO converts a forecast for the given city.
func ToForecastResponseDTO(city string, days []domain.ForecastDay) *ForecastResponseDTO {
	dto := &ForecastResponseDTO{
		City:     city,
		Days:     len(days),
		Forecast: make([]ForecastDayDTO, len(days)),
	}
	for i, d := range days {
		dto.Forecast[i] = ForecastDayDTO{
			Date:         d.Date,
			MaxTempC:     d.MaxTempC,
			MinTempC:     d.MinTempC,
			Condition:    d.Condition,
			ChanceOfRain: d.ChanceOfRain,
		}
	}
	return dto
}
