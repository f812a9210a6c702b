package trip

import (
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

// Placeholders used when stored enrichment data is missing on read.
const (
	DestinationUnavailable = "Destination details unavailable."
	WeatherUnavailable     = "Weather data unavailable."
	ItineraryUnavailable   = "Itinerary unavailable."
)

// View is a trip together with its enrichment data.
type View struct {
	Trip        domain.Trip
	Destination provider.Outcome[domain.Destination]
	Weather     provider.Outcome[[]domain.WeatherDay]
	Itinerary   string
}

func destinationOutcome(dests []domain.Destination) provider.Outcome[domain.Destination] {
	if len(dests) == 0 {
		return provider.Unavailable[domain.Destination](DestinationUnavailable)
	}
	d := dests[0]
	if !d.Available() {
		return provider.Unavailable[domain.Destination](d.Unavailable)
	}
	return provider.Ok(d)
}

// The reason a forecast was missing at create time is not stored.
func weatherOutcome(days []domain.WeatherDay) provider.Outcome[[]domain.WeatherDay] {
	if len(days) == 0 {
		return provider.Unavailable[[]domain.WeatherDay](WeatherUnavailable)
	}
	return provider.Ok(days)
}
