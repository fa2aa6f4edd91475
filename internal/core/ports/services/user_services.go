package services

import (
	"context"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// GetUserByEmail retrieves a user by email (case-sensitive).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a page of users ordered by creation time, plus the
	// cursor for the next page ("" when exhausted).
	ListUsers(ctx context.Context, limit int, pageToken string) ([]domain.User, string, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateUser updates an existing user's name fields.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUserID int64) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user. Admin accounts are never deleted.
	DeleteUser(ctx context.Context, userID int64, requestingUserID int64) error
}

// UserProvisionerSvc creates accounts for federated identities.
type UserProvisionerSvc interface {
	// FindOrCreateFederatedUser returns the user with the given email,
	// creating a verified password-less account on first federated login.
	FindOrCreateFederatedUser(ctx context.Context, provider string, info *domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserProvisionerSvc
}
