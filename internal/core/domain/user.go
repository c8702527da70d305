package domain

import "time"

// User represents an account that can authenticate against the API. The
// creation timestamp doubles as the account age used by the long-term
// customer discount.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
