package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

// Get returns the profile of username. The caller must be that user.
func (s *Service) Get(ctx context.Context, username string) (*domain.User, error) {
	if err := requireSelf(ctx, username); err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return user, nil
}

// List returns all users ordered by username.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Update applies a sparse profile update. A new password is re-hashed by
// the repository. The caller must be that user.
func (s *Service) Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := requireSelf(ctx, username); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, username, input.fields())
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.Int64("user_id", user.ID),
		slog.Bool("password_changed", input.Password != nil),
	)
	return user, nil
}

// Remove deletes the account of username together with its trips.
// The caller must be that user.
func (s *Service) Remove(ctx context.Context, username string) error {
	if err := requireSelf(ctx, username); err != nil {
		return err
	}

	if err := s.users.Remove(ctx, username); err != nil {
		return fmt.Errorf("user.Remove: %w", err)
	}

	s.log.InfoContext(ctx, "user removed", slog.String("username", username))
	return nil
}

func requireSelf(ctx context.Context, username string) error {
	current, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if current != username {
		return domain.ErrForbidden
	}
	return nil
}
