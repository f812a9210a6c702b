package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tripplanner-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Authenticate(ctx context.Context, input auth.LoginInput) (string, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// AuthHandler serves the token and registration endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Username  string `json:"username"   validate:"required,max=25"`
	Password  string `json:"password"   validate:"required,min=5,max=72"`
	FirstName string `json:"first_name" validate:"required,max=30"`
	Email     string `json:"email"      validate:"required,email,max=60"`
}

type registerResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.svc.Authenticate(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		Email:     req.Email,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		User:  toUserResponse(*result.User),
		Token: result.Token,
	})
}
