package repositories

import (
	"context"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByUsername retrieves a user by username, or
	// apperrors.ErrNotFound if no such user exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByID retrieves a user by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
