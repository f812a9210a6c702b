package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Named constraints with a more specific domain meaning than the default
// mapping of their error class.
var constraintErrors = map[string]error{
	"trips_user_id_trip_name_key": domain.ErrDuplicateName,
	// The token outlived its user.
	"trips_user_id_fkey": domain.ErrUnauthorized,
}

// MapError converts pgx/pgconn/scany errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s %v: %w", entity, key, mapped)
			}
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s %v: %w", entity, key, mapped)
			}
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case "23514", "22007", "22008": // check_violation, invalid datetime
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
