package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents an account in the system. Account registration, login and
// profile editing live outside this module; users are only loaded here.
type User struct {
	ID          int64     // Unique identifier
	Username    string    // Login username (unique)
	DisplayName string    // Public display name
	AvatarURL   string    // Avatar image location
	Role        Role      // USER or ADMIN
	CreatedAt   time.Time // Account creation timestamp
}

// IsAdmin reports whether the user carries the privileged role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data loading.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// GetByIDs retrieves users by given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
