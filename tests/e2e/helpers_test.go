//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/destination"
	itineraryrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/itinerary"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/testhelper"
	triprepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/trip"
	userrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/user"
	weatherrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/weather"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/countries"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/itinerary"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/weather"
	authpkg "github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/config"
	authsvc "github.com/heartmarshall/tripplanner-backend/internal/service/auth"
	tripsvc "github.com/heartmarshall/tripplanner-backend/internal/service/trip"
	usersvc "github.com/heartmarshall/tripplanner-backend/internal/service/user"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/dataloader"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// Fake upstreams
// ---------------------------------------------------------------------------

const franceBody = `[
	{
		"name": {"common": "France", "official": "French Republic"},
		"capital": ["Paris"],
		"currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
		"languages": {"fra": "French"},
		"region": "Europe",
		"subregion": "Western Europe",
		"population": 67391582,
		"timezones": ["UTC+01:00"],
		"flags": {"svg": "https://flagcdn.com/fr.svg"},
		"maps": {"googleMaps": "https://goo.gl/maps/g7QxxSFsWyTPKuzd7"},
		"startOfWeek": "monday"
	}
]`

// newCountriesUpstream knows France only; every other name is a 404.
func newCountriesUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(strings.TrimPrefix(r.URL.Path, "/name/"))
		if !strings.HasPrefix("france", name) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(franceBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newWeatherUpstream answers /{city}/{start}/{end} with one day per date.
// A city named "Stormville" gets a 500.
func newWeatherUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) != 3 || parts[0] == "Stormville" {
			http.Error(w, "upstream failure", http.StatusInternalServerError)
			return
		}
		start, err1 := time.Parse("2006-01-02", parts[1])
		end, err2 := time.Parse("2006-01-02", parts[2])
		if err1 != nil || err2 != nil {
			http.Error(w, "bad dates", http.StatusBadRequest)
			return
		}

		var days []map[string]any
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, map[string]any{
				"datetime":   d.Format("2006-01-02"),
				"tempmax":    19.5,
				"tempmin":    9.1,
				"temp":       14.2,
				"conditions": "Partially cloudy",
				"icon":       "partly-cloudy-day",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"resolvedAddress": parts[0], "days": days})
	}))
	t.Cleanup(srv.Close)
	return srv
}

type stubCompleter struct{}

func (stubCompleter) Complete(context.Context, string) (string, error) {
	return "**Day 1:**\n- **Morning:** Louvre\n- **Afternoon:** Seine walk\n- **Evening:** Bistro dinner", nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	userRepo := userrepo.New(pool, bcrypt.MinCost)
	tripRepo := triprepo.New(pool)
	destinationRepo := destination.New(pool)
	weatherRepo := weatherrepo.New(pool)
	itineraryRepo := itineraryrepo.New(pool)

	// 4. External providers, pointed at local fakes.
	breaker := config.BreakerConfig{MaxFailures: 100, OpenTimeout: time.Second, Interval: time.Minute}
	countriesClient := countries.NewClient(
		config.CountriesConfig{BaseURL: newCountriesUpstream(t).URL}, 5*time.Second, breaker, logger)
	weatherClient := weather.NewClient(
		config.WeatherConfig{BaseURL: newWeatherUpstream(t).URL, APIKey: "test-key"}, 5*time.Second, breaker, logger)
	generator := itinerary.NewGeneratorWith(stubCompleter{}, 5*time.Second, logger)

	// 5. Services.
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	authService := authsvc.NewService(logger, userRepo, jwtMgr)
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

	// 6. Router with the production middleware chain.
	handler := rest.NewRouter(
		rest.Handlers{
			Auth:         rest.NewAuthHandler(authService, logger),
			Users:        rest.NewUserHandler(userService, logger),
			Trips:        rest.NewTripHandler(tripService, logger),
			Destinations: rest.NewDestinationHandler(tripService, countriesClient, logger),
			Weather:      rest.NewWeatherHandler(tripService, logger),
			Health:       rest.NewHealthHandler(pool, "test-version", map[string]bool{"weather": true}),
		},
		rest.RouterDeps{
			Logger: logger,
			CORS: config.CORSConfig{
				AllowedOrigins: "*",
				AllowedMethods: "GET,POST,PATCH,DELETE",
				AllowedHeaders: "Authorization,Content-Type",
				MaxAge:         86400,
			},
			Tokens:  authService,
			Loaders: &dataloader.Repos{Destinations: destinationRepo},
		},
	)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// do sends a JSON request and returns status + decoded body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// errorMessage extracts the message of the {"error": {...}} envelope.
func errorMessage(t *testing.T, result map[string]any) string {
	t.Helper()
	env, ok := result["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %v", result)
	msg, _ := env["message"].(string)
	return msg
}

// registerUser creates a fresh user through the API and returns its
// username and token.
func registerUser(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	username := "u" + uuid.NewString()[:8]
	status, result := ts.do(t, http.MethodPost, "/auth/register", map[string]any{
		"username":   username,
		"password":   "password123",
		"first_name": "Test",
		"email":      fmt.Sprintf("%s@example.com", username),
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", result)

	token, ok := result["token"].(string)
	require.True(t, ok, "expected token string")
	return username, token
}

// parisTrip is the request body of the reference trip.
func parisTrip(name string) map[string]any {
	return map[string]any{
		"trip_name":        name,
		"start_date":       "2025-04-10",
		"end_date":         "2025-04-12",
		"location_city":    "Paris",
		"location_country": "France",
		"interests":        "museums, food",
	}
}

// createTrip posts body and returns the created trip id.
func createTrip(t *testing.T, ts *testServer, token string, body map[string]any) int64 {
	t.Helper()
	status, result := ts.do(t, http.MethodPost, "/trips", body, token)
	require.Equal(t, http.StatusCreated, status, "create trip: %v", result)
	trip := result["trip"].(map[string]any)
	return int64(trip["id"].(float64))
}
