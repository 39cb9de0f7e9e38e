package domain

// Hotel is an accommodation suggestion for a trip.
type Hotel struct {
	// Name is the hotel name, also used as the itinerary accommodation label
	Name string `json:"name"`

	// City is the city the hotel is in
	City string `json:"city"`

	// TotalStayCost is the estimated cost of the whole stay
	TotalStayCost float64 `json:"totalStayCost"`

	// StarRating is the rating on a 0-5 scale
	StarRating float64 `json:"starRating"`

	// Address is the street address, if known
	Address string `json:"address,omitempty"`

	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// ForecastDay is the weather forecast for a single day.
type ForecastDay struct {
	Date         string  `json:"date"`
	MaxTempC     float64 `json:"maxTempC"`
	MinTempC     float64 `json:"minTempC"`
	Condition    string  `json:"condition"`
	ChanceOfRain int     `json:"chanceOfRain"`
}
