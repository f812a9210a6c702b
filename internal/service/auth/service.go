package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Add(ctx context.Context, u domain.User, password string) (*domain.User, error)
	GetCredentials(ctx context.Context, username string) (*domain.Credentials, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(id auth.Identity) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Service implements registration, login and token validation.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}
