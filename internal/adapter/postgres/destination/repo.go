// Package destination implements the per-trip Destination snapshot repository.
package destination

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const table = "destinations"

var columns = []string{
	"id", "trip_id", "country", "official_name", "city", "capital_city", "currency",
	"languages", "timezones", "region", "subregion", "population", "flag",
	"google_maps", "start_of_week", "unavailable",
}

// Repo provides destination persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new destination repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type destinationRow struct {
	ID           int64    `db:"id"`
	TripID       int64    `db:"trip_id"`
	Country      string   `db:"country"`
	OfficialName string   `db:"official_name"`
	City         string   `db:"city"`
	CapitalCity  string   `db:"capital_city"`
	Currency     string   `db:"currency"`
	Languages    []string `db:"languages"`
	Timezones    []string `db:"timezones"`
	Region       string   `db:"region"`
	Subregion    string   `db:"subregion"`
	Population   int64    `db:"population"`
	Flag         string   `db:"flag"`
	GoogleMaps   string   `db:"google_maps"`
	StartOfWeek  string   `db:"start_of_week"`
	Unavailable  string   `db:"unavailable"`
}

// Add stores the destination snapshot of a trip.
func (r *Repo) Add(ctx context.Context, d domain.Destination) (*domain.Destination, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns[1:]...).
		Values(d.TripID, d.Country, d.OfficialName, d.City, d.CapitalCity, d.Currency,
			nonNil(d.Languages), nonNil(d.Timezones), d.Region, d.Subregion, d.Population, d.Flag,
			d.GoogleMaps, d.StartOfWeek, d.Unavailable).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert destination: %w", err)
	}

	var row destinationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "destination for trip", d.TripID)
	}

	return toDomain(row), nil
}

// Get returns a destination whose trip is owned by userID.
func (r *Repo) Get(ctx context.Context, userID, id int64) (*domain.Destination, error) {
	query, args, err := ownedSelect().
		Where(squirrel.Eq{"d.id": id, "t.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select destination: %w", err)
	}

	var row destinationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "destination", id)
	}

	return toDomain(row), nil
}

// GetAllFor returns the destinations of a trip owned by userID.
func (r *Repo) GetAllFor(ctx context.Context, userID, tripID int64) ([]domain.Destination, error) {
	query, args, err := ownedSelect().
		Where(squirrel.Eq{"d.trip_id": tripID, "t.user_id": userID}).
		OrderBy("d.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list destinations: %w", err)
	}

	return r.selectMany(ctx, query, args)
}

// GetByTripIDs returns destinations for multiple trips (batch for DataLoader).
// Callers are responsible for ownership of the trip ids.
func (r *Repo) GetByTripIDs(ctx context.Context, tripIDs []int64) ([]domain.Destination, error) {
	if len(tripIDs) == 0 {
		return []domain.Destination{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("trip_id = ANY(?)", tripIDs).
		OrderBy("trip_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build destinations by trip ids: %w", err)
	}

	return r.selectMany(ctx, query, args)
}

// Update applies a sparse update to a destination.
func (r *Repo) Update(ctx context.Context, id int64, fields []postgres.Field) (*domain.Destination, error) {
	set, err := postgres.PartialUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, set.SQL, set.Next(), strings.Join(columns, ", "))
	args := append(set.Args, id)

	var row destinationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "destination", id)
	}

	return toDomain(row), nil
}

// Remove deletes a destination.
func (r *Repo) Remove(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete destination: %w", err)
	}

	var deleted int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return postgres.MapError(err, "destination", id)
	}
	return nil
}

func (r *Repo) selectMany(ctx context.Context, query string, args []any) ([]domain.Destination, error) {
	var rows []destinationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select destinations: %w", err)
	}

	out := make([]domain.Destination, len(rows))
	for i, row := range rows {
		out[i] = *toDomain(row)
	}
	return out, nil
}

func ownedSelect() squirrel.SelectBuilder {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "d." + c
	}
	return postgres.Builder().
		Select(qualified...).
		From(table + " d").
		Join("trips t ON t.id = d.trip_id")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toDomain(row destinationRow) *domain.Destination {
	return &domain.Destination{
		ID:           row.ID,
		TripID:       row.TripID,
		Country:      row.Country,
		OfficialName: row.OfficialName,
		City:         row.City,
		CapitalCity:  row.CapitalCity,
		Currency:     row.Currency,
		Languages:    nonNil(row.Languages),
		Timezones:    nonNil(row.Timezones),
		Region:       row.Region,
		Subregion:    row.Subregion,
		Population:   row.Population,
		Flag:         row.Flag,
		GoogleMaps:   row.GoogleMaps,
		StartOfWeek:  row.StartOfWeek,
		Unavailable:  row.Unavailable,
	}
}
