package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/platform/config"
	"github.com/techhype/cardlink_backend/internal/utils"
)

const verificationTokenBytes = 32

// AuthService implements registration, login, email verification, password
// reset and token refresh. It is the only writer of credential and
// verification-token state; all strategies funnel through it.
type AuthService struct {
	cfg        *config.Config
	userRepo   portsrepo.UserRepositoryFacade
	tokenRepo  portsrepo.TokenRepositoryFacade
	tokenSvc   portssvc.TokenSvcFacade
	mailer     portssvc.Mailer
	strategies map[string]portssvc.AuthStrategy
	logger     *slog.Logger
}

func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepositoryFacade,
	tokenRepo portsrepo.TokenRepositoryFacade,
	tokenSvc portssvc.TokenSvcFacade,
	mailer portssvc.Mailer,
	strategies []portssvc.AuthStrategy,
	logger *slog.Logger,
) portssvc.AuthSvcFacade {
	byName := make(map[string]portssvc.AuthStrategy, len(strategies))
	for _, st := range strategies {
		byName[st.Name()] = st
	}
	return &AuthService{
		cfg:        cfg,
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		tokenSvc:   tokenSvc,
		mailer:     mailer,
		strategies: byName,
		logger:     logger,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", apperrors.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrValidation)
	}
	if !utils.IsValidPassword(password) {
		return nil, fmt.Errorf("%w: password must be 8-16 characters with upper, lower, digit and symbol", apperrors.ErrValidation)
	}

	salt, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := utils.HashPassword(ctx, password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         domain.RoleUser,
		Verified:     false,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    time.Now(),
	}
	userID, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to save user in service: %w", err)
	}
	user.UserID = userID

	token, err := s.issueVerificationToken(ctx, user.UserID, s.cfg.VerificationTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		// The account and token exist; the user can request a resend.
		s.logger.ErrorContext(ctx, "failed to send verification email", slog.String("email", user.Email), slog.String("error", err.Error()))
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, strategy string, creds portssvc.AuthCredentials) (*domain.User, *domain.TokenPair, error) {
	if strategy == "" {
		strategy = domain.ProviderLocal
	}
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown auth strategy %q", apperrors.ErrValidation, strategy)
	}

	user, err := st.Authenticate(ctx, creds)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.tokenSvc.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, pair, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	vt, err := s.consumeToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkUserVerified(ctx, vt.UserID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user, err := s.userRepo.FindUserByID(ctx, vt.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Succeed silently so the endpoint cannot enumerate accounts.
			return nil
		}
		return fmt.Errorf("failed to look up user for reset: %w", err)
	}

	token, err := s.issueVerificationToken(ctx, user.UserID, s.cfg.ResetTokenTTL)
	if err != nil {
		return err
	}
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		s.logger.ErrorContext(ctx, "failed to send password reset email", slog.String("email", user.Email), slog.String("error", err.Error()))
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if !utils.IsValidPassword(newPassword) {
		return fmt.Errorf("%w: password must be 8-16 characters with upper, lower, digit and symbol", apperrors.ErrValidation)
	}

	vt, err := s.consumeToken(ctx, token)
	if err != nil {
		return err
	}

	salt, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := utils.HashPassword(ctx, newPassword, salt)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, vt.UserID, hash, salt); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	user, err := s.tokenSvc.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	pair, err := s.tokenSvc.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return pair, nil
}

// issueVerificationToken stores a fresh single-use token for the user.
func (s *AuthService) issueVerificationToken(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token, err := utils.GenerateSecureRandomString(verificationTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	vt := domain.VerificationToken{
		UserID:     userID,
		Token:      token,
		Expiration: time.Now().Add(ttl),
	}
	if _, err := s.tokenRepo.SaveToken(ctx, vt); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	return token, nil
}

// consumeToken looks up an unexpired token and deletes it so it cannot be
// replayed. Unknown and expired tokens are indistinguishable to the caller.
func (s *AuthService) consumeToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	vt, err := s.tokenRepo.FindValidToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if err := s.tokenRepo.DeleteToken(ctx, vt.TokenID); err != nil {
		return nil, fmt.Errorf("failed to delete token: %w", err)
	}
	return vt, nil
}
