package repositories

import (
	"context"
	"time"

	"github.com/techhype/cardlink_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. The match is case-sensitive,
	// exactly as stored.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves users created strictly after the cursor instant,
	// oldest first, up to limit rows.
	FindUsers(ctx context.Context, limit int, after time.Time) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns the generated ID. A unique
	// violation on email surfaces as apperrors.ErrDuplicateEmail.
	SaveUser(ctx context.Context, user domain.User) (int64, error)

	// UpdateUser updates an existing user's name fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces the stored hash and salt.
	UpdateUserPassword(ctx context.Context, userID int64, hash, salt []byte) error

	// MarkUserVerified flips the user's verified flag to true.
	MarkUserVerified(ctx context.Context, userID int64) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// DeleteUser removes a user. Admin accounts are never deleted.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
