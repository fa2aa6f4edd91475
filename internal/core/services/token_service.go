package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/platform/config"
	"github.com/techhype/cardlink_backend/internal/utils"
)

// TokenService issues and validates the signed access/refresh token pair.
// The two tokens are signed with separate secrets so a leaked access secret
// cannot mint refresh tokens.
type TokenService struct {
	cfg     *config.Config
	userSvc portssvc.UserReaderSvc
}

func NewTokenService(cfg *config.Config, userSvc portssvc.UserReaderSvc) portssvc.TokenSvcFacade {
	return &TokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

func (s *TokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	now := time.Now()

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, user.Role, s.cfg.TokenSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := utils.GenerateJWT(user.UserID, user.Email, user.Role, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  now.Add(s.cfg.JWTExpiryDuration),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(s.cfg.RefreshTokenExpiryDuration),
	}, nil
}

func (s *TokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
