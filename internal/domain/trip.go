package domain

import "time"

// DateLayout is the calendar-date format used for trip dates and forecast days.
const DateLayout = "2006-01-02"

// Trip is a user-owned travel plan. (UserID, TripName) is unique.
type Trip struct {
	ID              int64
	UserID          int64
	TripName        string
	StartDate       time.Time
	EndDate         time.Time
	LocationCity    string
	LocationCountry string
	Interests       string
	CreatedAt       time.Time
}

// Days returns the inclusive number of calendar days covered by the trip.
func (t Trip) Days() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// Itinerary is the generated day-by-day plan stored for a trip.
type Itinerary struct {
	ID        int64
	TripID    int64
	Text      string
	CreatedAt time.Time
}
