package domain

import "time"

// UserRole gates catalog mutation (owner|staff) and catalog deletion (owner only).
type UserRole string

const (
	RoleOwner UserRole = "owner"
	RoleStaff UserRole = "staff"
)

// User is an actor referenced by transactions and sales. Users are never
// deleted once referenced, to keep history attributable.
type User struct {
	UserID        string    `json:"userID"`
	Username      string    `json:"username"` // unique login identifier
	PasswordHash  string    `json:"-"`
	Role          UserRole  `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
