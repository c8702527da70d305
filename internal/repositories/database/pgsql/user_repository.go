package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"
	"github.com/muhammadanas3/currency-exchange-api/internal/models"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils/mapping"
)

// PgxUserRepository implements the user repository port on top of pgxpool.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewPgxUserRepository creates a new PgxUserRepository.
func NewPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByUsername retrieves a user by username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, "username = $1", username)
}

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM users
		WHERE ` + where + `;`

	var modelUser models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID, &modelUser.Username, &modelUser.PasswordHash,
		&modelUser.Role, &modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (user_id, username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		modelUser.UserID, modelUser.Username, modelUser.PasswordHash,
		modelUser.Role, modelUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: username %q already taken", apperrors.ErrValidation, user.Username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
