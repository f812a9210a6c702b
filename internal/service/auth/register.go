package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Register creates a new user and issues an access token for it.
// Returns ErrAlreadyExists if the username is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Username uniqueness is enforced by a DB constraint.
	user, err := s.users.Add(ctx, domain.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
	}, input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Errorf(domain.ErrAlreadyExists, "Duplicate username: %s", input.Username)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(auth.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return &AuthResult{Token: token, User: user}, nil
}
