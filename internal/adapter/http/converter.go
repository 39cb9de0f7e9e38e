package http

import (
	"time"

	"github.com/trip-planner/trip-planner-service/internal/domain"
)

// ToDomainFlightCriteria converts a validated SearchFlightsRequest to domain criteria.
func ToDomainFlightCriteria(req *SearchFlightsRequest) domain.FlightSearchCriteria {
	return domain.FlightSearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Passengers:    req.Passengers,
		Filter:        ToDomainFilter(req.Filters),
	}
}

// ToDomainFilter converts a FilterDTO to a domain.JourneyFilter.
// A nil or empty DTO yields nil so the search behaves as unfiltered.
func ToDomainFilter(dto *FilterDTO) *domain.JourneyFilter {
	if dto == nil {
		return nil
	}

	filter := &domain.JourneyFilter{
		MaxPrice:           dto.MaxPrice,
		MaxStops:           dto.MaxStops,
		MinSeats:           dto.MinSeats,
		Carriers:           dto.Carriers,
		DepartureTimeRange: toDomainTimeRange(dto.DepartureTimeRange),
	}

	if filter.MaxPrice == nil && filter.MaxStops == nil && filter.MinSeats == nil &&
		len(filter.Carriers) == 0 && filter.DepartureTimeRange == nil {
		return nil
	}
	return filter
}

// toDomainTimeRange converts a TimeRangeDTO to domain.TimeRange.
func toDomainTimeRange(dto *TimeRangeDTO) *domain.TimeRange {
	if dto == nil || dto.Start == "" || dto.End == "" {
		return nil
	}

	startTime, err := time.Parse("15:04", dto.Start)
	if err != nil {
		return nil
	}
	endTime, err := time.Parse("15:04", dto.End)
	if err != nil {
		return nil
	}

	return &domain.TimeRange{
		Start: startTime,
		End:   endTime,
	}
}

// ToDomainItineraryRequest converts a validated GenerateItineraryRequest.
func ToDomainItineraryRequest(req *GenerateItineraryRequest) domain.ItineraryRequest {
	return domain.ItineraryRequest{
		Destination:        req.Destination,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		PartySize:          req.PartySize,
		Budget:             req.Budget,
		AccommodationLabel: req.AccommodationLabel,
	}
}

// ToDomainHotelCriteria converts a validated SuggestHotelsRequest.
func ToDomainHotelCriteria(req *SuggestHotelsRequest) domain.HotelSearchCriteria {
	return domain.HotelSearchCriteria{
		City:     req.City,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
	}
}
