package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

type weatherService interface {
	Weather(ctx context.Context, userID, tripID int64) ([]domain.WeatherDay, error)
	WeatherDay(ctx context.Context, userID, id int64) (*domain.WeatherDay, error)
}

// WeatherHandler serves the /weather endpoints.
type WeatherHandler struct {
	svc weatherService
	log *slog.Logger
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(svc weatherService, logger *slog.Logger) *WeatherHandler {
	return &WeatherHandler{svc: svc, log: logger.With("handler", "weather")}
}

// ForTrip handles GET /weather/{tripID}.
func (h *WeatherHandler) ForTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	tripID, err := pathID(r, "tripID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	days, err := h.svc.Weather(r.Context(), userID, tripID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weather": toWeatherResponses(days)})
}

// Details handles GET /weather/details/{id}.
func (h *WeatherHandler) Details(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	day, err := h.svc.WeatherDay(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weather": toWeatherResponse(*day)})
}
