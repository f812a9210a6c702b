package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/service/trip"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/dataloader"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

type tripService interface {
	Create(ctx context.Context, userID int64, input trip.CreateTripInput) (*trip.View, error)
	Get(ctx context.Context, userID, tripID int64) (*trip.View, error)
	List(ctx context.Context, userID int64) ([]domain.Trip, error)
	Update(ctx context.Context, userID, tripID int64, input trip.UpdateTripInput) (*domain.Trip, error)
	Delete(ctx context.Context, userID, tripID int64) error
}

// TripHandler serves the /trips endpoints. All routes require a user.
type TripHandler struct {
	svc tripService
	log *slog.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(svc tripService, logger *slog.Logger) *TripHandler {
	return &TripHandler{svc: svc, log: logger.With("handler", "trip")}
}

type createTripRequest struct {
	TripName        string `json:"trip_name"        validate:"required,max=100"`
	StartDate       string `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date"         validate:"required,datetime=2006-01-02"`
	LocationCity    string `json:"location_city"    validate:"required,max=100"`
	LocationCountry string `json:"location_country" validate:"required,max=100"`
	Interests       string `json:"interests"        validate:"required,max=500"`
}

type updateTripRequest struct {
	TripName        *string `json:"trip_name"        validate:"omitempty,max=100"`
	StartDate       *string `json:"start_date"       validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"end_date"         validate:"omitempty,datetime=2006-01-02"`
	LocationCity    *string `json:"location_city"    validate:"omitempty,max=100"`
	LocationCountry *string `json:"location_country" validate:"omitempty,max=100"`
	Interests       *string `json:"interests"        validate:"omitempty,max=500"`
}

// Create handles POST /trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	var req createTripRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// Layout already checked by the datetime tag.
	start, _ := time.Parse(domain.DateLayout, req.StartDate)
	end, _ := time.Parse(domain.DateLayout, req.EndDate)

	view, err := h.svc.Create(r.Context(), userID, trip.CreateTripInput{
		TripName:        req.TripName,
		StartDate:       start,
		EndDate:         end,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		Interests:       req.Interests,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTripViewResponse(view))
}

// List handles GET /trips. Destinations of all trips are loaded in one batch.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	trips, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ids := make([]int64, len(trips))
	for i, t := range trips {
		ids[i] = t.ID
	}
	dests, err := dataloader.FromContext(r.Context()).LoadDestinations(r.Context(), ids)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]tripListItem, len(trips))
	for i, t := range trips {
		out[i] = tripListItem{tripResponse: toTripResponse(t)}
		if len(dests[i]) > 0 {
			out[i].Destination = destinationOutcome(dests[i][0])
		} else {
			out[i].Destination = destinationOutcome(domain.Destination{Unavailable: trip.DestinationUnavailable})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"trips": out})
}

// Get handles GET /trips/{id}.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	tripID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Get(r.Context(), userID, tripID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripViewResponse(view))
}

// Update handles PATCH /trips/{id}.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	tripID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTripRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), userID, tripID, trip.UpdateTripInput{
		TripName:        req.TripName,
		StartDate:       parseDatePtr(req.StartDate),
		EndDate:         parseDatePtr(req.EndDate),
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		Interests:       req.Interests,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updatedTrip": toTripResponse(*updated)})
}

// Delete handles DELETE /trips/{id}.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	tripID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, tripID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Trip deleted"})
}

// parseDatePtr converts a validated optional date. An empty string becomes
// the zero time, which the service rejects as missing.
func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		t = time.Time{}
	}
	return &t
}
