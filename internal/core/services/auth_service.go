package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"
	"github.com/muhammadanas3/currency-exchange-api/internal/dto"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils"
)

// AuthService verifies credentials against the user store and issues
// signed API tokens.
type AuthService struct {
	users     portsrepo.UserRepositoryFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users portsrepo.UserRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Login verifies the credentials and returns a signed token response.
// Unknown users and bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(*user, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
	}, nil
}

// Register creates a new user with a hashed password.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	if _, err := s.users.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username %q already taken", apperrors.ErrValidation, req.Username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
