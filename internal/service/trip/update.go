package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

// refresh records which enrichment data an update invalidates.
type refresh struct {
	destination bool
	weather     bool
	itinerary   bool
}

func refreshFor(before, after domain.Trip) refresh {
	datesChanged := !before.StartDate.Equal(after.StartDate) || !before.EndDate.Equal(after.EndDate)
	cityChanged := before.LocationCity != after.LocationCity
	countryChanged := before.LocationCountry != after.LocationCountry

	return refresh{
		destination: countryChanged || cityChanged,
		weather:     datesChanged || cityChanged,
		itinerary:   datesChanged || cityChanged || countryChanged || before.Interests != after.Interests,
	}
}

// Update applies a sparse update to a trip owned by userID. When the dates or
// location change, the stored forecast, destination and itinerary are
// replaced in the same transaction as the trip row. Provider calls happen
// before the transaction opens.
func (s *Service) Update(ctx context.Context, userID, tripID int64, input UpdateTripInput) (*domain.Trip, error) {
	input.normalize()

	fields := input.fields()
	if len(fields) == 0 {
		return nil, domain.Errorf(domain.ErrInvalidInput, "No data provided for update")
	}

	current, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Update: %w", notFound(err, tripID))
	}
	if err := input.Validate(*current); err != nil {
		return nil, err
	}

	next := input.apply(*current)
	todo := refreshFor(*current, next)

	var (
		facts    provider.Outcome[domain.Destination]
		forecast provider.Outcome[[]domain.WeatherDay]
		text     string
	)
	if todo.destination {
		facts = s.countries.Safe(ctx, next.LocationCountry)
	}
	if todo.weather {
		forecast = s.forecast.Safe(ctx, next.LocationCity, next.StartDate, next.EndDate)
	}
	if todo.itinerary {
		text = s.planner.Generate(ctx, itineraryRequest(next))
	}

	var updated *domain.Trip
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.trips.Update(ctx, userID, tripID, fields)
		if err != nil {
			return notFound(duplicateName(err, next.TripName), tripID)
		}

		if todo.destination {
			if err := s.replaceDestination(ctx, *updated, facts); err != nil {
				return fmt.Errorf("replace destination: %w", err)
			}
		}
		if todo.weather {
			if err := s.replaceForecast(ctx, tripID, forecast); err != nil {
				return fmt.Errorf("replace weather: %w", err)
			}
		}
		if todo.itinerary {
			if err := s.replaceItinerary(ctx, tripID, text); err != nil {
				return fmt.Errorf("replace itinerary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("trip.Update: %w", err)
	}

	s.log.InfoContext(ctx, "trip updated",
		slog.Int64("user_id", userID),
		slog.Int64("trip_id", tripID),
		slog.Bool("destination_refreshed", todo.destination),
		slog.Bool("weather_refreshed", todo.weather),
		slog.Bool("itinerary_refreshed", todo.itinerary),
	)

	return updated, nil
}

func (s *Service) replaceDestination(ctx context.Context, trip domain.Trip, facts provider.Outcome[domain.Destination]) error {
	old, err := s.destinations.GetAllFor(ctx, trip.UserID, trip.ID)
	if err != nil {
		return err
	}
	for _, d := range old {
		if err := s.destinations.Remove(ctx, d.ID); err != nil {
			return err
		}
	}

	d := domain.Destination{Country: trip.LocationCountry, Unavailable: facts.Placeholder}
	if facts.Available() {
		d = facts.Value
	}
	d.TripID = trip.ID
	d.City = trip.LocationCity

	_, err = s.destinations.Add(ctx, d)
	return err
}

// replaceForecast drops the stored days; a placeholder leaves none behind.
func (s *Service) replaceForecast(ctx context.Context, tripID int64, forecast provider.Outcome[[]domain.WeatherDay]) error {
	if _, err := s.weather.RemoveForTrip(ctx, tripID); err != nil {
		return err
	}
	if !forecast.Available() {
		return nil
	}
	_, err := s.weather.AddDays(ctx, tripID, forecast.Value)
	return err
}

func (s *Service) replaceItinerary(ctx context.Context, tripID int64, text string) error {
	_, err := s.itineraries.Update(ctx, tripID, []domain.Field{{Name: "text", Value: text}})
	if errors.Is(err, domain.ErrNotFound) {
		_, err = s.itineraries.Add(ctx, tripID, text)
	}
	return err
}

// Delete removes a trip owned by userID with all its enrichment rows.
func (s *Service) Delete(ctx context.Context, userID, tripID int64) error {
	if err := s.trips.Remove(ctx, userID, tripID); err != nil {
		return fmt.Errorf("trip.Delete: %w", notFound(err, tripID))
	}

	s.log.InfoContext(ctx, "trip deleted",
		slog.Int64("user_id", userID),
		slog.Int64("trip_id", tripID),
	)
	return nil
}
