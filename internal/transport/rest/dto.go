package rest

import (
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
	"github.com/heartmarshall/tripplanner-backend/internal/service/trip"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		CreatedAt: u.CreatedAt,
	}
}

type tripResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	TripName        string    `json:"trip_name"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	LocationCity    string    `json:"location_city"`
	LocationCountry string    `json:"location_country"`
	Interests       string    `json:"interests"`
	CreatedAt       time.Time `json:"created_at"`
}

func toTripResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		TripName:        t.TripName,
		StartDate:       t.StartDate.Format(domain.DateLayout),
		EndDate:         t.EndDate.Format(domain.DateLayout),
		LocationCity:    t.LocationCity,
		LocationCountry: t.LocationCountry,
		Interests:       t.Interests,
		CreatedAt:       t.CreatedAt,
	}
}

type destinationResponse struct {
	ID           int64    `json:"id"`
	TripID       int64    `json:"trip_id"`
	Country      string   `json:"country"`
	OfficialName string   `json:"official_name"`
	City         string   `json:"city"`
	CapitalCity  string   `json:"capital_city"`
	Currency     string   `json:"currency"`
	Languages    []string `json:"languages"`
	Timezones    []string `json:"timezones"`
	Region       string   `json:"region"`
	Subregion    string   `json:"subregion"`
	Population   int64    `json:"population"`
	Flag         string   `json:"flag"`
	GoogleMaps   string   `json:"google_maps"`
	StartOfWeek  string   `json:"start_of_week"`
}

func toDestinationResponse(d domain.Destination) destinationResponse {
	return destinationResponse{
		ID:           d.ID,
		TripID:       d.TripID,
		Country:      d.Country,
		OfficialName: d.OfficialName,
		City:         d.City,
		CapitalCity:  d.CapitalCity,
		Currency:     d.Currency,
		Languages:    nonNil(d.Languages),
		Timezones:    nonNil(d.Timezones),
		Region:       d.Region,
		Subregion:    d.Subregion,
		Population:   d.Population,
		Flag:         d.Flag,
		GoogleMaps:   d.GoogleMaps,
		StartOfWeek:  d.StartOfWeek,
	}
}

// destinationOutcome renders a stored placeholder row as {"message": ...}.
func destinationOutcome(d domain.Destination) provider.Outcome[destinationResponse] {
	if !d.Available() {
		return provider.Unavailable[destinationResponse](d.Unavailable)
	}
	return provider.Ok(toDestinationResponse(d))
}

type weatherResponse struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"trip_id"`
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Temp          float64 `json:"temp"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	PrecipProb    float64 `json:"precip_prob"`
	WindSpeed     float64 `json:"wind_speed"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Conditions    string  `json:"conditions"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
}

func toWeatherResponse(d domain.WeatherDay) weatherResponse {
	return weatherResponse{
		ID:            d.ID,
		TripID:        d.TripID,
		Date:          d.Date.Format(domain.DateLayout),
		TempMax:       d.TempMax,
		TempMin:       d.TempMin,
		Temp:          d.Temp,
		Humidity:      d.Humidity,
		Precipitation: d.Precipitation,
		PrecipProb:    d.PrecipProb,
		WindSpeed:     d.WindSpeed,
		Sunrise:       d.Sunrise,
		Sunset:        d.Sunset,
		Conditions:    d.Conditions,
		Description:   d.Description,
		Icon:          d.Icon,
	}
}

func toWeatherResponses(days []domain.WeatherDay) []weatherResponse {
	out := make([]weatherResponse, len(days))
	for i, d := range days {
		out[i] = toWeatherResponse(d)
	}
	return out
}

// tripViewResponse is the {trip, destination, weather, itinerary} body of
// trip creation and lookup.
type tripViewResponse struct {
	Trip        tripResponse                          `json:"trip"`
	Destination provider.Outcome[destinationResponse] `json:"destination"`
	Weather     provider.Outcome[[]weatherResponse]   `json:"weather"`
	Itinerary   string                                `json:"itinerary"`
}

func toTripViewResponse(v *trip.View) tripViewResponse {
	return tripViewResponse{
		Trip:        toTripResponse(v.Trip),
		Destination: provider.Map(v.Destination, toDestinationResponse),
		Weather:     provider.Map(v.Weather, toWeatherResponses),
		Itinerary:   v.Itinerary,
	}
}

// tripListItem is a trip with its destination, loaded in one batch.
type tripListItem struct {
	tripResponse
	Destination provider.Outcome[destinationResponse] `json:"destination"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
