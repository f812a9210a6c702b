package auth

import "github.com/heartmarshall/tripplanner-backend/internal/domain"

// AuthResult is returned by Register.
type AuthResult struct {
	Token string
	User  *domain.User
}
