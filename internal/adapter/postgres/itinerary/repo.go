// Package itinerary implements the generated-itinerary repository.
// Each trip has at most one itinerary; it is keyed by trip id.
package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const (
	table     = "itineraries"
	returning = "RETURNING id, trip_id, itinerary, created_at"
)

// updateColumns maps the "text" field to its column.
var updateColumns = map[string]string{"text": "itinerary"}

// Repo provides itinerary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new itinerary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type itineraryRow struct {
	ID        int64     `db:"id"`
	TripID    int64     `db:"trip_id"`
	Text      string    `db:"itinerary"`
	CreatedAt time.Time `db:"created_at"`
}

// Add stores the itinerary text of a trip.
func (r *Repo) Add(ctx context.Context, tripID int64, text string) (*domain.Itinerary, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("trip_id", "itinerary").
		Values(tripID, text).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert itinerary: %w", err)
	}

	var row itineraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary for trip", tripID)
	}

	return toDomain(row), nil
}

// GetForTrip returns the itinerary of a trip owned by userID.
func (r *Repo) GetForTrip(ctx context.Context, userID, tripID int64) (*domain.Itinerary, error) {
	query, args, err := postgres.Builder().
		Select("i.id", "i.trip_id", "i.itinerary", "i.created_at").
		From(table + " i").
		Join("trips t ON t.id = i.trip_id").
		Where(squirrel.Eq{"i.trip_id": tripID, "t.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select itinerary: %w", err)
	}

	var row itineraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary for trip", tripID)
	}

	return toDomain(row), nil
}

// Update applies a sparse update to the itinerary of a trip.
func (r *Repo) Update(ctx context.Context, tripID int64, fields []postgres.Field) (*domain.Itinerary, error) {
	set, err := postgres.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE trip_id = $%d %s", table, set.SQL, set.Next(), returning)
	args := append(set.Args, tripID)

	var row itineraryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "itinerary for trip", tripID)
	}

	return toDomain(row), nil
}

// Remove deletes the itinerary of a trip.
func (r *Repo) Remove(ctx context.Context, tripID int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"trip_id": tripID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete itinerary: %w", err)
	}

	var deleted int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return postgres.MapError(err, "itinerary for trip", tripID)
	}
	return nil
}

func toDomain(row itineraryRow) *domain.Itinerary {
	return &domain.Itinerary{
		ID:        row.ID,
		TripID:    row.TripID,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
	}
}
