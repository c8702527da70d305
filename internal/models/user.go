package models

import "time"

// User is the database row for an API user.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
