package trip

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

const (
	maxNameLen      = 100
	maxLocationLen  = 100
	maxInterestsLen = 500
)

// CreateTripInput holds parameters for the Create operation.
type CreateTripInput struct {
	TripName        string
	StartDate       time.Time
	EndDate         time.Time
	LocationCity    string
	LocationCountry string
	Interests       string
}

func (i *CreateTripInput) normalize() {
	i.TripName = domain.NormalizeName(i.TripName)
	i.LocationCity = domain.NormalizeName(i.LocationCity)
	i.LocationCountry = domain.NormalizeName(i.LocationCountry)
	i.Interests = strings.TrimSpace(i.Interests)
}

// Validate validates the create input.
func (i CreateTripInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "trip_name", i.TripName, maxNameLen)
	errs = checkText(errs, "location_city", i.LocationCity, maxLocationLen)
	errs = checkText(errs, "location_country", i.LocationCountry, maxLocationLen)
	errs = checkText(errs, "interests", i.Interests, maxInterestsLen)
	errs = checkDates(errs, i.StartDate, i.EndDate)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTripInput holds parameters for the Update operation.
// All fields are optional (nil = don't change).
type UpdateTripInput struct {
	TripName        *string
	StartDate       *time.Time
	EndDate         *time.Time
	LocationCity    *string
	LocationCountry *string
	Interests       *string
}

func (i *UpdateTripInput) normalize() {
	normalizePtr(&i.TripName, domain.NormalizeName)
	normalizePtr(&i.LocationCity, domain.NormalizeName)
	normalizePtr(&i.LocationCountry, domain.NormalizeName)
	normalizePtr(&i.Interests, strings.TrimSpace)
}

// Validate validates the update input against the trip it applies to, so a
// single changed date is checked against the stored other one.
func (i UpdateTripInput) Validate(current domain.Trip) error {
	var errs []domain.FieldError

	if i.TripName != nil {
		errs = checkText(errs, "trip_name", *i.TripName, maxNameLen)
	}
	if i.LocationCity != nil {
		errs = checkText(errs, "location_city", *i.LocationCity, maxLocationLen)
	}
	if i.LocationCountry != nil {
		errs = checkText(errs, "location_country", *i.LocationCountry, maxLocationLen)
	}
	if i.Interests != nil {
		errs = checkText(errs, "interests", *i.Interests, maxInterestsLen)
	}
	if i.StartDate != nil || i.EndDate != nil {
		merged := i.apply(current)
		errs = checkDates(errs, merged.StartDate, merged.EndDate)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply returns current with the set fields replaced.
func (i UpdateTripInput) apply(current domain.Trip) domain.Trip {
	t := current
	if i.TripName != nil {
		t.TripName = *i.TripName
	}
	if i.StartDate != nil {
		t.StartDate = *i.StartDate
	}
	if i.EndDate != nil {
		t.EndDate = *i.EndDate
	}
	if i.LocationCity != nil {
		t.LocationCity = *i.LocationCity
	}
	if i.LocationCountry != nil {
		t.LocationCountry = *i.LocationCountry
	}
	if i.Interests != nil {
		t.Interests = *i.Interests
	}
	return t
}

// fields lists the set fields in column order.
func (i UpdateTripInput) fields() []domain.Field {
	var out []domain.Field
	if i.TripName != nil {
		out = append(out, domain.Field{Name: "trip_name", Value: *i.TripName})
	}
	if i.StartDate != nil {
		out = append(out, domain.Field{Name: "start_date", Value: *i.StartDate})
	}
	if i.EndDate != nil {
		out = append(out, domain.Field{Name: "end_date", Value: *i.EndDate})
	}
	if i.LocationCity != nil {
		out = append(out, domain.Field{Name: "location_city", Value: *i.LocationCity})
	}
	if i.LocationCountry != nil {
		out = append(out, domain.Field{Name: "location_country", Value: *i.LocationCountry})
	}
	if i.Interests != nil {
		out = append(out, domain.Field{Name: "interests", Value: *i.Interests})
	}
	return out
}

func checkText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch {
	case value == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(value) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func checkDates(errs []domain.FieldError, start, end time.Time) []domain.FieldError {
	if start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if end.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "required"})
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	return errs
}

func normalizePtr(p **string, fn func(string) string) {
	if *p == nil {
		return
	}
	v := fn(**p)
	*p = &v
}
