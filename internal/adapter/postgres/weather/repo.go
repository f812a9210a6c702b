// Package weather implements the per-day forecast repository.
package weather

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const table = "weather"

var columns = []string{
	"id", "trip_id", "date", "temp_max", "temp_min", "temp", "humidity",
	"precipitation", "precip_prob", "wind_speed", "sunrise", "sunset",
	"conditions", "description", "icon",
}

// Repo provides forecast persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new weather repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type dayRow struct {
	ID            int64     `db:"id"`
	TripID        int64     `db:"trip_id"`
	Date          time.Time `db:"date"`
	TempMax       float64   `db:"temp_max"`
	TempMin       float64   `db:"temp_min"`
	Temp          float64   `db:"temp"`
	Humidity      float64   `db:"humidity"`
	Precipitation float64   `db:"precipitation"`
	PrecipProb    float64   `db:"precip_prob"`
	WindSpeed     float64   `db:"wind_speed"`
	Sunrise       string    `db:"sunrise"`
	Sunset        string    `db:"sunset"`
	Conditions    string    `db:"conditions"`
	Description   string    `db:"description"`
	Icon          string    `db:"icon"`
}

// AddDays inserts one row per forecast day in a single statement and returns
// the stored rows in date order. An empty slice is a no-op.
func (r *Repo) AddDays(ctx context.Context, tripID int64, days []domain.WeatherDay) ([]domain.WeatherDay, error) {
	if len(days) == 0 {
		return []domain.WeatherDay{}, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns(columns[1:]...)
	for _, d := range days {
		insert = insert.Values(tripID, d.Date, d.TempMax, d.TempMin, d.Temp, d.Humidity,
			d.Precipitation, d.PrecipProb, d.WindSpeed, d.Sunrise, d.Sunset,
			d.Conditions, d.Description, d.Icon)
	}

	query, args, err := insert.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert weather: %w", err)
	}

	var rows []dayRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "weather for trip", tripID)
	}

	// RETURNING follows insertion order.
	slices.SortStableFunc(rows, func(a, b dayRow) int {
		return a.Date.Compare(b.Date)
	})
	return toDomainSlice(rows), nil
}

// Get returns one forecast day whose trip is owned by userID.
func (r *Repo) Get(ctx context.Context, userID, id int64) (*domain.WeatherDay, error) {
	query, args, err := ownedSelect().
		Where(squirrel.Eq{"w.id": id, "t.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select weather: %w", err)
	}

	var row dayRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "weather", id)
	}

	day := toDomain(row)
	return &day, nil
}

// GetAllFor returns the forecast days of a trip owned by userID, by date.
func (r *Repo) GetAllFor(ctx context.Context, userID, tripID int64) ([]domain.WeatherDay, error) {
	query, args, err := ownedSelect().
		Where(squirrel.Eq{"w.trip_id": tripID, "t.user_id": userID}).
		OrderBy("w.date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list weather: %w", err)
	}

	var rows []dayRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weather: %w", err)
	}

	return toDomainSlice(rows), nil
}

// Update applies a sparse update to one forecast day.
func (r *Repo) Update(ctx context.Context, id int64, fields []postgres.Field) (*domain.WeatherDay, error) {
	set, err := postgres.PartialUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, set.SQL, set.Next(), strings.Join(columns, ", "))
	args := append(set.Args, id)

	var row dayRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "weather", id)
	}

	day := toDomain(row)
	return &day, nil
}

// Remove deletes one forecast day.
func (r *Repo) Remove(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete weather: %w", err)
	}

	var deleted int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&deleted); err != nil {
		return postgres.MapError(err, "weather", id)
	}
	return nil
}

// RemoveForTrip deletes every forecast day of a trip and returns how many
// rows were removed. Zero is not an error.
func (r *Repo) RemoveForTrip(ctx context.Context, tripID int64) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"trip_id": tripID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete trip weather: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "weather for trip", tripID)
	}
	return tag.RowsAffected(), nil
}

func ownedSelect() squirrel.SelectBuilder {
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "w." + c
	}
	return postgres.Builder().
		Select(qualified...).
		From(table + " w").
		Join("trips t ON t.id = w.trip_id")
}

func toDomainSlice(rows []dayRow) []domain.WeatherDay {
	out := make([]domain.WeatherDay, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}

func toDomain(row dayRow) domain.WeatherDay {
	return domain.WeatherDay{
		ID:            row.ID,
		TripID:        row.TripID,
		Date:          row.Date,
		TempMax:       row.TempMax,
		TempMin:       row.TempMin,
		Temp:          row.Temp,
		Humidity:      row.Humidity,
		Precipitation: row.Precipitation,
		PrecipProb:    row.PrecipProb,
		WindSpeed:     row.WindSpeed,
		Sunrise:       row.Sunrise,
		Sunset:        row.Sunset,
		Conditions:    row.Conditions,
		Description:   row.Description,
		Icon:          row.Icon,
	}
}
