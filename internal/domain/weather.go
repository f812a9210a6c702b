package domain

import "time"

// WeatherDay is one forecast day stored for a trip.
type WeatherDay struct {
	ID            int64
	TripID        int64
	Date          time.Time
	TempMax       float64
	TempMin       float64
	Temp          float64
	Humidity      float64
	Precipitation float64
	PrecipProb    float64
	WindSpeed     float64
	Sunrise       string
	Sunset        string
	Conditions    string
	Description   string
	Icon          string
}
