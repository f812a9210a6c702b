// Package app wires configuration, storage, providers, services and the
// HTTP transport into a running server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/destination"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/itinerary"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/trip"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/weather"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/countries"
	itineraryprovider "github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/itinerary"
	weatherprovider "github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/weather"
	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/config"
	authsvc "github.com/heartmarshall/tripplanner-backend/internal/service/auth"
	tripsvc "github.com/heartmarshall/tripplanner-backend/internal/service/trip"
	usersvc "github.com/heartmarshall/tripplanner-backend/internal/service/user"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/dataloader"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/middleware"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/rest"
)

// rateLimitCleanup is how often idle per-IP buckets are swept.
const rateLimitCleanup = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	userRepo := user.New(pool, cfg.Auth.PasswordHashCost)
	tripRepo := trip.New(pool)
	destinationRepo := destination.New(pool)
	weatherRepo := weather.New(pool)
	itineraryRepo := itinerary.New(pool)
	txm := postgres.NewTxManager(pool)

	// Providers.
	pc := cfg.Providers
	countriesClient := countries.NewClient(pc.Countries, pc.Timeout, pc.Breaker, logger)
	weatherClient := weatherprovider.NewClient(pc.Weather, pc.Timeout, pc.Breaker, logger)
	generator := itineraryprovider.NewGenerator(pc.Itinerary, logger)

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, jwtManager)
	userService := usersvc.NewService(logger, userRepo)
	tripService := tripsvc.NewService(logger,
		tripsvc.Repos{
			Trips:        tripRepo,
			Destinations: destinationRepo,
			Weather:      weatherRepo,
			Itineraries:  itineraryRepo,
		},
		tripsvc.Providers{
			Countries: countriesClient,
			Weather:   weatherClient,
			Itinerary: generator,
		},
		txm,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, rateLimitCleanup)
		defer limiter.Stop()
	}

	handler := rest.NewRouter(
		rest.Handlers{
			Auth:         rest.NewAuthHandler(authService, logger),
			Users:        rest.NewUserHandler(userService, logger),
			Trips:        rest.NewTripHandler(tripService, logger),
			Destinations: rest.NewDestinationHandler(tripService, countriesClient, logger),
			Weather:      rest.NewWeatherHandler(tripService, logger),
			Health: rest.NewHealthHandler(pool, BuildVersion(), map[string]bool{
				"countries": pc.Countries.BaseURL != "",
				"weather":   pc.Weather.APIKey != "",
				"itinerary": pc.Itinerary.APIKey != "",
			}),
			Metrics: promhttp.Handler(),
		},
		rest.RouterDeps{
			Logger:  logger,
			CORS:    cfg.CORS,
			Tokens:  authService,
			Loaders: &dataloader.Repos{Destinations: destinationRepo},
			Limiter: limiter,
		},
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	if err := serve(ctx, srv, cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	logger.Info("http server stopped")
	return nil
}
