package user

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// UpdateUserInput holds parameters for the profile update operation.
// All fields are optional (nil = don't change).
type UpdateUserInput struct {
	FirstName *string
	Email     *string
	Password  *string
}

// Validate validates the update input.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName != nil {
		if n := utf8.RuneCountInString(*i.FirstName); n == 0 {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "cannot be empty"})
		} else if n > 30 {
			errs = append(errs, domain.FieldError{Field: "first_name", Message: "too long"})
		}
	}

	if i.Email != nil {
		if *i.Email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "cannot be empty"})
		} else if len(*i.Email) > 60 {
			errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
		} else if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if i.Password != nil {
		if n := utf8.RuneCountInString(*i.Password); n < 5 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
		} else if n > 72 {
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fields lists the set fields in a fixed order: first_name, email, password.
func (i UpdateUserInput) fields() []domain.Field {
	var out []domain.Field
	if i.FirstName != nil {
		out = append(out, domain.Field{Name: "first_name", Value: strings.TrimSpace(*i.FirstName)})
	}
	if i.Email != nil {
		out = append(out, domain.Field{Name: "email", Value: strings.ToLower(strings.TrimSpace(*i.Email))})
	}
	if i.Password != nil {
		out = append(out, domain.Field{Name: "password", Value: *i.Password})
	}
	return out
}
