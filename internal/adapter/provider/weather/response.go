package weather

import (
	"fmt"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

type timelineResponse struct {
	ResolvedAddress string   `json:"resolvedAddress"`
	Days            []apiDay `json:"days"`
}

// apiDay is one element of the Visual Crossing "days" array.
type apiDay struct {
	Datetime    string  `json:"datetime"`
	TempMax     float64 `json:"tempmax"`
	TempMin     float64 `json:"tempmin"`
	Temp        float64 `json:"temp"`
	Humidity    float64 `json:"humidity"`
	Precip      float64 `json:"precip"`
	PrecipProb  float64 `json:"precipprob"`
	WindSpeed   float64 `json:"windspeed"`
	Sunrise     string  `json:"sunrise"`
	Sunset      string  `json:"sunset"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

func toDomain(days []apiDay) ([]domain.WeatherDay, error) {
	out := make([]domain.WeatherDay, 0, len(days))
	for _, d := range days {
		date, err := time.Parse(domain.DateLayout, d.Datetime)
		if err != nil {
			return nil, fmt.Errorf("parse day %q: %w", d.Datetime, err)
		}
		out = append(out, domain.WeatherDay{
			Date:          date,
			TempMax:       d.TempMax,
			TempMin:       d.TempMin,
			Temp:          d.Temp,
			Humidity:      d.Humidity,
			Precipitation: d.Precip,
			PrecipProb:    d.PrecipProb,
			WindSpeed:     d.WindSpeed,
			Sunrise:       d.Sunrise,
			Sunset:        d.Sunset,
			Conditions:    d.Conditions,
			Description:   d.Description,
			Icon:          d.Icon,
		})
	}
	return out, nil
}
