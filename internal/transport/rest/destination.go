package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

type destinationService interface {
	Destinations(ctx context.Context, userID, tripID int64) ([]domain.Destination, error)
	Destination(ctx context.Context, userID, id int64) (*domain.Destination, error)
}

// countrySearcher suggests country names for a partial input.
type countrySearcher interface {
	Search(ctx context.Context, partial string) ([]string, error)
}

// DestinationHandler serves the /destinations endpoints.
type DestinationHandler struct {
	svc       destinationService
	countries countrySearcher
	log       *slog.Logger
}

// NewDestinationHandler creates a DestinationHandler.
func NewDestinationHandler(svc destinationService, countries countrySearcher, logger *slog.Logger) *DestinationHandler {
	return &DestinationHandler{svc: svc, countries: countries, log: logger.With("handler", "destination")}
}

// ForTrip handles GET /destinations/{tripID}.
func (h *DestinationHandler) ForTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	tripID, err := pathID(r, "tripID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	dests, err := h.svc.Destinations(r.Context(), userID, tripID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]any, len(dests))
	for i, d := range dests {
		out[i] = destinationOutcome(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{"destinations": out})
}

// Details handles GET /destinations/details/{id}.
func (h *DestinationHandler) Details(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Destination(r.Context(), userID, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"destination": destinationOutcome(*d)})
}

// Suggest handles GET /destinations/suggest?q=. An upstream failure yields
// an empty list rather than an error.
func (h *DestinationHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	names, err := h.countries.Search(r.Context(), q)
	if err != nil {
		h.log.WarnContext(r.Context(), "country suggestions unavailable",
			slog.String("query", q),
			slog.String("error", err.Error()),
		)
		names = nil
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": names})
}
