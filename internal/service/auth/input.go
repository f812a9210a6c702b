package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Field limits shared with the users table.
const (
	maxUsernameLen  = 25
	minPasswordLen  = 5
	maxPasswordLen  = 72
	maxFirstNameLen = 30
	maxEmailLen     = 60
)

// RegisterInput holds parameters for the Register operation.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	Email     string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendLength(errs, "username", i.Username, 1, maxUsernameLen)
	errs = appendLength(errs, "password", i.Password, minPasswordLen, maxPasswordLen)
	errs = appendLength(errs, "first_name", i.FirstName, 1, maxFirstNameLen)

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case utf8.RuneCountInString(i.Email) > maxEmailLen:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	default:
		if _, err := mail.ParseAddress(i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for the Authenticate operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendLength(errs []domain.FieldError, field, value string, minLen, maxLen int) []domain.FieldError {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case n < minLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case n > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
