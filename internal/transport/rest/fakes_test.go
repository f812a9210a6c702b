package rest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/internal/provider"
	authsvc "github.com/heartmarshall/tripplanner-backend/internal/service/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/service/user"
)

// memStore is an in-memory stand-in for the trip tables.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	trips  map[int64]domain.Trip
	dests  map[int64]domain.Destination
	days   map[int64]domain.WeatherDay
	itins  map[int64]domain.Itinerary
	users  map[int64]bool
}

func newMemStore() *memStore {
	return &memStore{
		trips: map[int64]domain.Trip{},
		dests: map[int64]domain.Destination{},
		days:  map[int64]domain.WeatherDay{},
		itins: map[int64]domain.Itinerary{},
		users: map[int64]bool{7: true, 8: true},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) owns(userID, tripID int64) bool {
	t, ok := s.trips[tripID]
	return ok && t.UserID == userID
}

type memTrips struct{ s *memStore }

func (r memTrips) Add(_ context.Context, t domain.Trip) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.users[t.UserID] {
		return nil, fmt.Errorf("insert trip: %w", domain.ErrUnauthorized)
	}
	for _, existing := range r.s.trips {
		if existing.UserID == t.UserID && existing.TripName == t.TripName {
			return nil, fmt.Errorf("insert trip: %w", domain.ErrDuplicateName)
		}
	}
	t.ID = r.s.id()
	t.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.s.trips[t.ID] = t
	return &t, nil
}

func (r memTrips) Get(_ context.Context, userID, tripID int64) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.owns(userID, tripID) {
		return nil, domain.ErrNotFound
	}
	t := r.s.trips[tripID]
	return &t, nil
}

func (r memTrips) GetAllFor(_ context.Context, userID int64) ([]domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Trip
	for _, t := range r.s.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r memTrips) Update(_ context.Context, userID, tripID int64, fields []domain.Field) (*domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.owns(userID, tripID) {
		return nil, domain.ErrNotFound
	}
	t := r.s.trips[tripID]
	for _, f := range fields {
		switch f.Name {
		case "trip_name":
			t.TripName = f.Value.(string)
		case "start_date":
			t.StartDate = f.Value.(time.Time)
		case "end_date":
			t.EndDate = f.Value.(time.Time)
		case "location_city":
			t.LocationCity = f.Value.(string)
		case "location_country":
			t.LocationCountry = f.Value.(string)
		case "interests":
			t.Interests = f.Value.(string)
		}
	}
	r.s.trips[tripID] = t
	return &t, nil
}

func (r memTrips) Remove(_ context.Context, userID, tripID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.owns(userID, tripID) {
		return domain.ErrNotFound
	}
	delete(r.s.trips, tripID)
	return nil
}

type memDests struct{ s *memStore }

func (r memDests) Add(_ context.Context, d domain.Destination) (*domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d.ID = r.s.id()
	r.s.dests[d.ID] = d
	return &d, nil
}

func (r memDests) Get(_ context.Context, userID, id int64) (*domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dests[id]
	if !ok || !r.s.owns(userID, d.TripID) {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r memDests) GetAllFor(_ context.Context, userID, tripID int64) ([]domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Destination
	for _, d := range r.s.dests {
		if d.TripID == tripID && r.s.owns(userID, tripID) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memDests) GetByTripIDs(_ context.Context, tripIDs []int64) ([]domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Destination
	for _, d := range r.s.dests {
		if slices.Contains(tripIDs, d.TripID) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memDests) Remove(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.dests, id)
	return nil
}

type memWeather struct{ s *memStore }

func (r memWeather) AddDays(_ context.Context, tripID int64, days []domain.WeatherDay) ([]domain.WeatherDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.WeatherDay, len(days))
	for i, d := range days {
		d.ID = r.s.id()
		d.TripID = tripID
		r.s.days[d.ID] = d
		out[i] = d
	}
	return out, nil
}

func (r memWeather) Get(_ context.Context, userID, id int64) (*domain.WeatherDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.days[id]
	if !ok || !r.s.owns(userID, d.TripID) {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r memWeather) GetAllFor(_ context.Context, userID, tripID int64) ([]domain.WeatherDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.WeatherDay
	for _, d := range r.s.days {
		if d.TripID == tripID && r.s.owns(userID, tripID) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r memWeather) RemoveForTrip(_ context.Context, tripID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, d := range r.s.days {
		if d.TripID == tripID {
			delete(r.s.days, id)
			n++
		}
	}
	return n, nil
}

type memItins struct{ s *memStore }

func (r memItins) Add(_ context.Context, tripID int64, text string) (*domain.Itinerary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it := domain.Itinerary{ID: r.s.id(), TripID: tripID, Text: text}
	r.s.itins[tripID] = it
	return &it, nil
}

func (r memItins) GetForTrip(_ context.Context, userID, tripID int64) (*domain.Itinerary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.itins[tripID]
	if !ok || !r.s.owns(userID, tripID) {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (r memItins) Update(_ context.Context, tripID int64, fields []domain.Field) (*domain.Itinerary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.itins[tripID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	it.Text = fields[0].Value.(string)
	r.s.itins[tripID] = it
	return &it, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Providers
// ---------------------------------------------------------------------------

type fakeCountries struct{}

func (fakeCountries) Safe(_ context.Context, name string) provider.Outcome[domain.Destination] {
	if name != "France" {
		return provider.Unavailable[domain.Destination]("Destination details unavailable.")
	}
	return provider.Ok(domain.Destination{
		Country:      "France",
		OfficialName: "French Republic",
		CapitalCity:  "Paris",
		Currency:     "Euro (€)",
		Languages:    []string{"French"},
		Timezones:    []string{"UTC+01:00"},
		Region:       "Europe",
		Subregion:    "Western Europe",
		Population:   67391582,
	})
}

func (fakeCountries) Search(_ context.Context, partial string) ([]string, error) {
	var out []string
	for _, name := range []string{"France", "French Polynesia", "Finland"} {
		if strings.Contains(strings.ToLower(name), strings.ToLower(partial)) {
			out = append(out, name)
		}
	}
	return out, nil
}

type fakeForecast struct {
	mu   sync.Mutex
	down bool
}

func (f *fakeForecast) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func (f *fakeForecast) Safe(_ context.Context, _ string, start, end time.Time) provider.Outcome[[]domain.WeatherDay] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return provider.Unavailable[[]domain.WeatherDay]("Weather data unavailable.")
	}
	var days []domain.WeatherDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, domain.WeatherDay{Date: d, TempMax: 19, TempMin: 9, Conditions: "Partially cloudy"})
	}
	return provider.Ok(days)
}

type fakePlanner struct{}

func (fakePlanner) Generate(_ context.Context, req provider.ItineraryRequest) string {
	return fmt.Sprintf("**Day 1:**\n- **Morning:** Walk around %s", req.City)
}

// ---------------------------------------------------------------------------
// Auth and users
// ---------------------------------------------------------------------------

type fakeTokens map[string]auth.Identity

func (f fakeTokens) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	id, ok := f[token]
	if !ok {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

type fakeAuth struct{}

func (fakeAuth) Authenticate(_ context.Context, in authsvc.LoginInput) (string, error) {
	if in.Username == "alice" && in.Password == "secret" {
		return "alice-token", nil
	}
	return "", domain.Errorf(domain.ErrUnauthorized, "Invalid username/password")
}

func (fakeAuth) Register(_ context.Context, in authsvc.RegisterInput) (*authsvc.AuthResult, error) {
	if in.Username == "alice" {
		return nil, domain.Errorf(domain.ErrAlreadyExists, "Duplicate username: %s", in.Username)
	}
	return &authsvc.AuthResult{
		Token: "new-token",
		User:  &domain.User{ID: 9, Username: in.Username, Email: in.Email, FirstName: in.FirstName},
	}, nil
}

type fakeUsers struct{}

func (fakeUsers) Get(_ context.Context, username string) (*domain.User, error) {
	return &domain.User{ID: 7, Username: username, Email: username + "@example.com", FirstName: "Alice"}, nil
}

func (fakeUsers) List(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: 7, Username: "alice"}, {ID: 8, Username: "bob"}}, nil
}

func (fakeUsers) Update(_ context.Context, username string, in user.UpdateUserInput) (*domain.User, error) {
	u := &domain.User{ID: 7, Username: username, FirstName: "Alice"}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	return u, nil
}

func (fakeUsers) Remove(context.Context, string) error { return nil }
