package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Get(ctx context.Context, username string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, username string, fields []domain.Field) (*domain.User, error)
	Remove(ctx context.Context, username string) error
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
