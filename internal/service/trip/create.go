package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

// Create inserts a trip and enriches it with a destination snapshot, a
// forecast and an itinerary. The enrichment steps run one after another and
// never fail the request on a provider outage; a storage error on any of
// them is returned and leaves the rows written so far in place.
func (s *Service) Create(ctx context.Context, userID int64, input CreateTripInput) (*View, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Duplicate names are rejected by trips_user_id_trip_name_key before any
	// provider is called.
	trip, err := s.trips.Add(ctx, domain.Trip{
		UserID:          userID,
		TripName:        input.TripName,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		LocationCity:    input.LocationCity,
		LocationCountry: input.LocationCountry,
		Interests:       input.Interests,
	})
	if err != nil {
		return nil, fmt.Errorf("trip.Create: %w", duplicateName(err, input.TripName))
	}

	s.log.InfoContext(ctx, "trip created",
		slog.Int64("user_id", userID),
		slog.Int64("trip_id", trip.ID),
	)

	view := &View{Trip: *trip}

	view.Destination, err = s.storeDestination(ctx, *trip)
	if err != nil {
		return nil, fmt.Errorf("trip.Create destination: %w", err)
	}

	view.Weather, err = s.storeForecast(ctx, *trip)
	if err != nil {
		return nil, fmt.Errorf("trip.Create weather: %w", err)
	}

	view.Itinerary, err = s.storeItinerary(ctx, *trip)
	if err != nil {
		return nil, fmt.Errorf("trip.Create itinerary: %w", err)
	}

	return view, nil
}

// storeDestination saves the country facts, or the placeholder alongside the
// requested country and city.
func (s *Service) storeDestination(ctx context.Context, trip domain.Trip) (provider.Outcome[domain.Destination], error) {
	facts := s.countries.Safe(ctx, trip.LocationCountry)

	d := domain.Destination{Country: trip.LocationCountry, Unavailable: facts.Placeholder}
	if facts.Available() {
		d = facts.Value
	}
	d.TripID = trip.ID
	d.City = trip.LocationCity

	saved, err := s.destinations.Add(ctx, d)
	if err != nil {
		return provider.Outcome[domain.Destination]{}, err
	}
	if !facts.Available() {
		return facts, nil
	}
	return provider.Ok(*saved), nil
}

// storeForecast saves one row per forecast day. A placeholder stores nothing.
func (s *Service) storeForecast(ctx context.Context, trip domain.Trip) (provider.Outcome[[]domain.WeatherDay], error) {
	forecast := s.forecast.Safe(ctx, trip.LocationCity, trip.StartDate, trip.EndDate)
	if !forecast.Available() {
		return forecast, nil
	}

	days, err := s.weather.AddDays(ctx, trip.ID, forecast.Value)
	if err != nil {
		return provider.Outcome[[]domain.WeatherDay]{}, err
	}
	return provider.Ok(days), nil
}

// storeItinerary saves the generated text, which may be an apology message.
func (s *Service) storeItinerary(ctx context.Context, trip domain.Trip) (string, error) {
	text := s.planner.Generate(ctx, itineraryRequest(trip))

	saved, err := s.itineraries.Add(ctx, trip.ID, text)
	if err != nil {
		return "", err
	}
	return saved.Text, nil
}

func itineraryRequest(t domain.Trip) provider.ItineraryRequest {
	return provider.ItineraryRequest{
		City:      t.LocationCity,
		Country:   t.LocationCountry,
		Interests: t.Interests,
		Start:     t.StartDate,
		End:       t.EndDate,
		Days:      t.Days(),
	}
}

func duplicateName(err error, name string) error {
	if errors.Is(err, domain.ErrDuplicateName) {
		return domain.Errorf(domain.ErrDuplicateName, "Duplicate trip name: %s", name)
	}
	return err
}
