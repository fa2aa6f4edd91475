package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/utils"
)

// localAuthStrategy authenticates with an email and password against the
// stored hash. Unverified accounts are rejected before the password check.
type localAuthStrategy struct {
	userRepo portsrepo.UserReader
}

func NewLocalAuthStrategy(userRepo portsrepo.UserReader) portssvc.AuthStrategy {
	return &localAuthStrategy{userRepo: userRepo}
}

func (s *localAuthStrategy) Name() string { return domain.ProviderLocal }

func (s *localAuthStrategy) Authenticate(ctx context.Context, creds portssvc.AuthCredentials) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Verified {
		return nil, apperrors.ErrUnverified
	}
	if !user.HasLocalCredentials() {
		// Federated accounts have no password to check.
		return nil, apperrors.ErrBadCredentials
	}

	ok, err := utils.VerifyPassword(ctx, creds.Password, user.Salt, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrBadCredentials
	}
	return user, nil
}
