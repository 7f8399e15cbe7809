package models

import "time"

// UserRole mirrors domain.UserRole at the storage layer.
type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleStaff UserRole = "staff"
)

// User represents a user row.
type User struct {
	UserID        string    `db:"user_id"`
	Username      string    `db:"username"`
	PasswordHash  string    `db:"password_hash"`
	Role          UserRole  `db:"role"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
