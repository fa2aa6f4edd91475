package services

import (
	"context"
	"fmt"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
)

// googleAuthStrategy authenticates with a Google ID token. The account is
// provisioned on first login, already verified, with no local password.
type googleAuthStrategy struct {
	oauthSvc    portssvc.GoogleOAuthHandlerSvcFacade
	provisioner portssvc.UserProvisionerSvc
}

func NewGoogleAuthStrategy(oauthSvc portssvc.GoogleOAuthHandlerSvcFacade, provisioner portssvc.UserProvisionerSvc) portssvc.AuthStrategy {
	return &googleAuthStrategy{oauthSvc: oauthSvc, provisioner: provisioner}
}

func (s *googleAuthStrategy) Name() string { return domain.ProviderGoogle }

func (s *googleAuthStrategy) Authenticate(ctx context.Context, creds portssvc.AuthCredentials) (*domain.User, error) {
	if creds.IDToken == "" {
		return nil, fmt.Errorf("%w: id token is required", apperrors.ErrValidation)
	}

	payload, err := s.oauthSvc.ValidateGoogleIDToken(ctx, creds.IDToken)
	if err != nil {
		return nil, apperrors.ErrBadCredentials
	}

	info := &domain.GoogleUserInfo{
		ID:         payload.Subject,
		Email:      claimString(payload.Claims, "email"),
		GivenName:  claimString(payload.Claims, "given_name"),
		FamilyName: claimString(payload.Claims, "family_name"),
		Picture:    claimString(payload.Claims, "picture"),
	}
	if info.Email == "" {
		return nil, apperrors.ErrBadCredentials
	}

	return s.provisioner.FindOrCreateFederatedUser(ctx, domain.ProviderGoogle, info)
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
