package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// Authenticate checks a username and password and returns a signed token.
// Returns ErrUnauthorized if the user is not found or the password is wrong.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	creds, err := s.users.GetCredentials(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.Errorf(domain.ErrUnauthorized, "Invalid username/password")
		}
		return "", fmt.Errorf("auth.Authenticate get credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(input.Password)); err != nil {
		return "", domain.Errorf(domain.ErrUnauthorized, "Invalid username/password")
	}

	token, err := s.jwt.GenerateAccessToken(auth.Identity{UserID: creds.User.ID, Username: creds.User.Username})
	if err != nil {
		return "", fmt.Errorf("auth.Authenticate issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", creds.User.ID))
	return token, nil
}

// ValidateToken validates an access token and returns its identity.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
