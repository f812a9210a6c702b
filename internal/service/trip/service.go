// Package trip implements the trip workflow: creating a trip together with
// its destination snapshot, forecast and itinerary, and reading them back.
package trip

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
)

// tripRepo defines the trip repository interface needed by trip service.
type tripRepo interface {
	Add(ctx context.Context, t domain.Trip) (*domain.Trip, error)
	Get(ctx context.Context, userID, tripID int64) (*domain.Trip, error)
	GetAllFor(ctx context.Context, userID int64) ([]domain.Trip, error)
	Update(ctx context.Context, userID, tripID int64, fields []domain.Field) (*domain.Trip, error)
	Remove(ctx context.Context, userID, tripID int64) error
}

// destinationRepo defines the destination repository interface needed by trip service.
type destinationRepo interface {
	Add(ctx context.Context, d domain.Destination) (*domain.Destination, error)
	Get(ctx context.Context, userID, destinationID int64) (*domain.Destination, error)
	GetAllFor(ctx context.Context, userID, tripID int64) ([]domain.Destination, error)
	Remove(ctx context.Context, destinationID int64) error
}

// weatherRepo defines the weather repository interface needed by trip service.
type weatherRepo interface {
	AddDays(ctx context.Context, tripID int64, days []domain.WeatherDay) ([]domain.WeatherDay, error)
	Get(ctx context.Context, userID, weatherID int64) (*domain.WeatherDay, error)
	GetAllFor(ctx context.Context, userID, tripID int64) ([]domain.WeatherDay, error)
	RemoveForTrip(ctx context.Context, tripID int64) (int64, error)
}

// itineraryRepo defines the itinerary repository interface needed by trip service.
type itineraryRepo interface {
	Add(ctx context.Context, tripID int64, text string) (*domain.Itinerary, error)
	GetForTrip(ctx context.Context, userID, tripID int64) (*domain.Itinerary, error)
	Update(ctx context.Context, tripID int64, fields []domain.Field) (*domain.Itinerary, error)
}

// countryLookup returns country facts or a placeholder.
type countryLookup interface {
	Safe(ctx context.Context, name string) provider.Outcome[domain.Destination]
}

// forecaster returns a day-by-day forecast or a placeholder.
type forecaster interface {
	Safe(ctx context.Context, city string, start, end time.Time) provider.Outcome[[]domain.WeatherDay]
}

// planner writes an itinerary; failures come back as apology text.
type planner interface {
	Generate(ctx context.Context, req provider.ItineraryRequest) string
}

// txManager defines the transaction manager interface needed by trip service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos groups the repositories used by the service.
type Repos struct {
	Trips        tripRepo
	Destinations destinationRepo
	Weather      weatherRepo
	Itineraries  itineraryRepo
}

// Providers groups the external data sources used by the service.
type Providers struct {
	Countries countryLookup
	Weather   forecaster
	Itinerary planner
}

// Service implements trip operations.
type Service struct {
	log          *slog.Logger
	trips        tripRepo
	destinations destinationRepo
	weather      weatherRepo
	itineraries  itineraryRepo
	countries    countryLookup
	forecast     forecaster
	planner      planner
	tx           txManager
}

// NewService creates a new trip service instance.
func NewService(logger *slog.Logger, repos Repos, providers Providers, tx txManager) *Service {
	return &Service{
		log:          logger.With("service", "trip"),
		trips:        repos.Trips,
		destinations: repos.Destinations,
		weather:      repos.Weather,
		itineraries:  repos.Itineraries,
		countries:    providers.Countries,
		forecast:     providers.Weather,
		planner:      providers.Itinerary,
		tx:           tx,
	}
}
