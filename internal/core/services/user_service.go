package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/dto"
	"github.com/techhype/cardlink_backend/internal/utils/pagination"
)

type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email in service: %w", err)
	}
	return user, nil
}

// ListUsers pages through users ordered by creation time. The page token is
// an opaque created_at cursor; an empty token starts from the beginning.
func (s *UserService) ListUsers(ctx context.Context, limit int, pageToken string) ([]domain.User, string, error) {
	if limit <= 0 {
		limit = 20
	}

	after := time.Time{}
	if pageToken != "" {
		var err error
		after, err = pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	users, err := s.userRepo.FindUsers(ctx, limit, after)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list users in service: %w", err)
	}

	nextToken := ""
	if len(users) == limit {
		nextToken = pagination.EncodeToken(users[len(users)-1].CreatedAt)
	}
	return users, nextToken, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUserID int64) (*domain.User, error) {
	if err := s.authorize(ctx, userID, requestingUserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int64, requestingUserID int64) error {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return apperrors.ErrForbidden
	}
	// The repository silently refuses to delete admins.
	return s.userRepo.DeleteUser(ctx, userID)
}

// FindOrCreateFederatedUser resolves a federated login to an account. New
// accounts are created already verified (the provider vouched for the email)
// and without local credentials.
func (s *UserService) FindOrCreateFederatedUser(ctx context.Context, provider string, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up federated user: %w", err)
	}

	newUser := domain.User{
		FirstName:    info.GivenName,
		LastName:     info.FamilyName,
		Email:        info.Email,
		Role:         domain.RoleUser,
		Verified:     true,
		AuthProvider: provider,
		CreatedAt:    time.Now(),
	}
	userID, err := s.userRepo.SaveUser(ctx, newUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			// Lost a race with a concurrent first login; the row exists now.
			return s.userRepo.FindUserByEmail(ctx, info.Email)
		}
		return nil, fmt.Errorf("failed to create federated user: %w", err)
	}
	newUser.UserID = userID
	return &newUser, nil
}

// authorize allows a user to act on themselves and admins to act on anyone.
func (s *UserService) authorize(ctx context.Context, targetUserID, requestingUserID int64) error {
	if targetUserID == requestingUserID {
		return nil
	}
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
