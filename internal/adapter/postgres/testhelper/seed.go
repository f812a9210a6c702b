package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Username:  "user-" + suffix,
		Email:     "user-" + suffix + "@example.com",
		FirstName: "Test " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash, first_name, email)
		 VALUES ($1, 'not-a-real-hash', $2, $3)
		 RETURNING id, created_at`,
		user.Username, user.FirstName, user.Email,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTrip inserts a ten-day trip to Paris owned by userID.
func SeedTrip(t *testing.T, pool *pgxpool.Pool, userID int64) domain.Trip {
	t.Helper()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	trip := domain.Trip{
		UserID:          userID,
		TripName:        "Trip " + uniqueSuffix(),
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 9),
		LocationCity:    "Paris",
		LocationCountry: "France",
		Interests:       "art, food",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO trips (user_id, trip_name, start_date, end_date, location_city, location_country, interests)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		trip.UserID, trip.TripName, trip.StartDate, trip.EndDate,
		trip.LocationCity, trip.LocationCountry, trip.Interests,
	).Scan(&trip.ID, &trip.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTrip: %v", err)
	}

	return trip
}
