// Package trip implements the Trip repository using PostgreSQL.
// Every read and write is scoped to the owning user.
package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const table = "trips"

var columns = []string{
	"id", "user_id", "trip_name", "start_date", "end_date",
	"location_city", "location_country", "interests", "created_at",
}

// Repo provides trip persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trip repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type tripRow struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	TripName        string    `db:"trip_name"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	LocationCity    string    `db:"location_city"`
	LocationCountry string    `db:"location_country"`
	Interests       string    `db:"interests"`
	CreatedAt       time.Time `db:"created_at"`
}

// Add inserts the trip. A second trip with the same name for the same user
// violates trips_user_id_trip_name_key and fails with domain.ErrDuplicateName.
func (r *Repo) Add(ctx context.Context, t domain.Trip) (*domain.Trip, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "trip_name", "start_date", "end_date", "location_city", "location_country", "interests").
		Values(t.UserID, t.TripName, t.StartDate, t.EndDate, t.LocationCity, t.LocationCountry, t.Interests).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", t.TripName)
	}

	return toDomain(row), nil
}

// Get returns a trip owned by userID.
func (r *Repo) Get(ctx context.Context, userID, tripID int64) (*domain.Trip, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": tripID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select trip: %w", err)
	}

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", tripID)
	}

	return toDomain(row), nil
}

// GetAllFor returns the user's trips ordered by start date.
func (r *Repo) GetAllFor(ctx context.Context, userID int64) ([]domain.Trip, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trips: %w", err)
	}

	var rows []tripRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}

	trips := make([]domain.Trip, len(rows))
	for i, row := range rows {
		trips[i] = *toDomain(row)
	}
	return trips, nil
}

// Update applies a sparse update to a trip owned by userID.
func (r *Repo) Update(ctx context.Context, userID, tripID int64, fields []postgres.Field) (*domain.Trip, error) {
	set, err := postgres.PartialUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		table, set.SQL, set.Next(), set.Next()+1, strings.Join(columns, ", "))
	args := append(set.Args, tripID, userID)

	var row tripRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "trip", tripID)
	}

	return toDomain(row), nil
}

// Remove deletes a trip owned by userID; destination, weather and itinerary
// rows cascade.
func (r *Repo) Remove(ctx context.Context, userID, tripID int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": tripID, "user_id": userID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete trip: %w", err)
	}

	var deleted int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return postgres.MapError(err, "trip", tripID)
	}
	return nil
}

func toDomain(row tripRow) *domain.Trip {
	return &domain.Trip{
		ID:              row.ID,
		UserID:          row.UserID,
		TripName:        row.TripName,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		LocationCity:    row.LocationCity,
		LocationCountry: row.LocationCountry,
		Interests:       row.Interests,
		CreatedAt:       row.CreatedAt,
	}
}
