package trip

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Get returns a trip owned by userID with its stored enrichment data.
// Missing forecast rows or itinerary degrade to placeholders.
func (s *Service) Get(ctx context.Context, userID, tripID int64) (*View, error) {
	trip, err := s.trips.Get(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Get: %w", notFound(err, tripID))
	}

	dests, err := s.destinations.GetAllFor(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Get destination: %w", err)
	}

	days, err := s.weather.GetAllFor(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Get weather: %w", err)
	}

	text := ItineraryUnavailable
	itin, err := s.itineraries.GetForTrip(ctx, userID, tripID)
	switch {
	case err == nil:
		text = itin.Text
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("trip.Get itinerary: %w", err)
	}

	return &View{
		Trip:        *trip,
		Destination: destinationOutcome(dests),
		Weather:     weatherOutcome(days),
		Itinerary:   text,
	}, nil
}

// List returns the trips of userID ordered by start date.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Trip, error) {
	trips, err := s.trips.GetAllFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("trip.List: %w", err)
	}
	return trips, nil
}

// Destinations returns the destination snapshots of a trip owned by userID.
func (s *Service) Destinations(ctx context.Context, userID, tripID int64) ([]domain.Destination, error) {
	if _, err := s.trips.Get(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("trip.Destinations: %w", notFound(err, tripID))
	}

	dests, err := s.destinations.GetAllFor(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Destinations: %w", err)
	}
	return dests, nil
}

// Destination returns one destination snapshot owned by userID.
func (s *Service) Destination(ctx context.Context, userID, id int64) (*domain.Destination, error) {
	d, err := s.destinations.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.Errorf(domain.ErrNotFound, "No destination found with ID: %d", id)
		}
		return nil, fmt.Errorf("trip.Destination: %w", err)
	}
	return d, nil
}

// Weather returns the stored forecast days of a trip owned by userID.
func (s *Service) Weather(ctx context.Context, userID, tripID int64) ([]domain.WeatherDay, error) {
	if _, err := s.trips.Get(ctx, userID, tripID); err != nil {
		return nil, fmt.Errorf("trip.Weather: %w", notFound(err, tripID))
	}

	days, err := s.weather.GetAllFor(ctx, userID, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Weather: %w", err)
	}
	return days, nil
}

// WeatherDay returns one stored forecast day owned by userID.
func (s *Service) WeatherDay(ctx context.Context, userID, id int64) (*domain.WeatherDay, error) {
	day, err := s.weather.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.Errorf(domain.ErrNotFound, "No weather data found with ID: %d", id)
		}
		return nil, fmt.Errorf("trip.WeatherDay: %w", err)
	}
	return day, nil
}

func notFound(err error, tripID int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Errorf(domain.ErrNotFound, "No trip found with ID: %d", tripID)
	}
	return err
}
