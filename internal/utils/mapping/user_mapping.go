package mapping

import (
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/muhammadanas3/currency-exchange-api/internal/models"
)

// ToModelUser converts a domain User to its database model.
func ToModelUser(user domain.User) models.User {
	return models.User{
		UserID:       user.UserID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
	}
}

// ToDomainUser converts a database model to the domain User.
func ToDomainUser(user models.User) domain.User {
	return domain.User{
		UserID:       user.UserID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         domain.Role(user.Role),
		CreatedAt:    user.CreatedAt,
	}
}
