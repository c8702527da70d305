package services

import (
	"context"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/muhammadanas3/currency-exchange-api/internal/dto"
)

// AuthSvcFacade authenticates users and issues API tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed token response.
	// Fails with apperrors.ErrUnauthorized on unknown user or bad password.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}
