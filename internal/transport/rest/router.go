package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/config"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/dataloader"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Trips        *TripHandler
	Destinations *DestinationHandler
	Weather      *WeatherHandler
	Health       *HealthHandler
	Metrics      http.Handler
}

// RouterDeps holds what the middleware chain needs.
type RouterDeps struct {
	Logger  *slog.Logger
	CORS    config.CORSConfig
	Tokens  tokenValidator
	Loaders *dataloader.Repos
	// Limiter guards /auth/*; nil disables rate limiting.
	Limiter *middleware.RateLimiter
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	user := middleware.RequireUser
	self := middleware.RequireSelf("username")
	authGate := func(next http.Handler) http.Handler { return next }
	if deps.Limiter != nil {
		authGate = deps.Limiter.Limit()
	}
	loaders := middleware.Middleware(dataloader.Middleware(deps.Loaders))

	mux.Handle("POST /auth/token", middleware.Wrap(h.Auth.Token, authGate))
	mux.Handle("POST /auth/register", middleware.Wrap(h.Auth.Register, authGate))

	mux.Handle("GET /users", middleware.Wrap(h.Users.List, user))
	mux.Handle("GET /users/{username}", middleware.Wrap(h.Users.Get, self))
	mux.Handle("PATCH /users/{username}", middleware.Wrap(h.Users.Update, self))
	mux.Handle("DELETE /users/{username}", middleware.Wrap(h.Users.Delete, self))

	mux.Handle("POST /trips", middleware.Wrap(h.Trips.Create, user))
	mux.Handle("GET /trips", middleware.Wrap(h.Trips.List, user, loaders))
	mux.Handle("GET /trips/{id}", middleware.Wrap(h.Trips.Get, user))
	mux.Handle("PATCH /trips/{id}", middleware.Wrap(h.Trips.Update, user))
	mux.Handle("DELETE /trips/{id}", middleware.Wrap(h.Trips.Delete, user))

	mux.Handle("GET /destinations/suggest", middleware.Wrap(h.Destinations.Suggest, user))
	mux.Handle("GET /destinations/details/{id}", middleware.Wrap(h.Destinations.Details, user))
	mux.Handle("GET /destinations/{tripID}", middleware.Wrap(h.Destinations.ForTrip, user))

	mux.Handle("GET /weather/details/{id}", middleware.Wrap(h.Weather.Details, user))
	mux.Handle("GET /weather/{tripID}", middleware.Wrap(h.Weather.ForTrip, user))

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("/", notFound)

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Metrics,
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens, deps.Logger),
	)(middleware.CapturePattern(mux))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found")
}
