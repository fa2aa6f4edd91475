package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/core/services"
	"github.com/techhype/cardlink_backend/internal/platform/config"
	"github.com/techhype/cardlink_backend/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		TokenSecret:                "test-access-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "cardlink-test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 24 * time.Hour,
		VerificationTokenTTL:       24 * time.Hour,
		ResetTokenTTL:              time.Hour,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// hashedUser builds a verified local user whose password is knownPassword.
func hashedUser(t *testing.T, userID int64, email, password string) *domain.User {
	t.Helper()
	salt, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	require.NoError(t, err)
	hash, err := utils.HashPassword(context.Background(), password, salt)
	require.NoError(t, err)
	return &domain.User{
		UserID:       userID,
		FirstName:    "Kari",
		LastName:     "Nordmann",
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         domain.RoleUser,
		Verified:     true,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    time.Now(),
	}
}

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo  *MockUserRepository
	tokenRepo *MockTokenRepository
	tokenSvc  *MockTokenService
	mailer    *MockMailer
	service   portssvc.AuthSvcFacade
	ctx       context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.tokenRepo = new(MockTokenRepository)
	s.tokenSvc = new(MockTokenService)
	s.mailer = new(MockMailer)
	s.ctx = context.Background()

	strategies := []portssvc.AuthStrategy{
		services.NewLocalAuthStrategy(s.userRepo),
	}
	s.service = services.NewAuthService(testConfig(), s.userRepo, s.tokenRepo, s.tokenSvc, s.mailer, strategies, discardLogger())
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	var saved domain.User
	s.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		saved = user
		return 7, nil
	}
	s.tokenRepo.On("SaveToken", mock.Anything, mock.AnythingOfType("domain.VerificationToken")).Return(int64(1), nil).Once()
	s.mailer.On("SendVerificationEmail", mock.Anything, "kari@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	user, err := s.service.Register(s.ctx, "Kari", "Nordmann", "kari@example.com", "Str0ng!Pass")

	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
	s.Equal(domain.RoleUser, saved.Role)
	s.False(saved.Verified)
	s.Equal(domain.ProviderLocal, saved.AuthProvider)
	s.Len(saved.PasswordHash, utils.HashKeyLength)
	s.Len(saved.Salt, utils.MinSaltLength)
	s.tokenRepo.AssertExpectations(s.T())
	s.mailer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		return 0, apperrors.ErrDuplicateEmail
	}

	user, err := s.service.Register(s.ctx, "Kari", "Nordmann", "kari@example.com", "Str0ng!Pass")

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrDuplicateEmail)
	s.mailer.AssertNotCalled(s.T(), "SendVerificationEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsWeakPassword() {
	user, err := s.service.Register(s.ctx, "Kari", "Nordmann", "kari@example.com", "weak")

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsInvalidEmail() {
	user, err := s.service.Register(s.ctx, "Kari", "Nordmann", "not-an-email", "Str0ng!Pass")

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestRegister_MailFailureDoesNotFailRegistration() {
	s.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		return 7, nil
	}
	s.tokenRepo.On("SaveToken", mock.Anything, mock.AnythingOfType("domain.VerificationToken")).Return(int64(1), nil).Once()
	s.mailer.On("SendVerificationEmail", mock.Anything, "kari@example.com", mock.AnythingOfType("string")).Return(errors.New("smtp down")).Once()

	user, err := s.service.Register(s.ctx, "Kari", "Nordmann", "kari@example.com", "Str0ng!Pass")

	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := hashedUser(s.T(), 7, "kari@example.com", "Str0ng!Pass")
	pair := &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(user, nil).Once()
	s.tokenSvc.On("IssueTokenPair", mock.Anything, user).Return(pair, nil).Once()

	gotUser, gotPair, err := s.service.Login(s.ctx, "", portssvc.AuthCredentials{Email: "kari@example.com", Password: "Str0ng!Pass"})

	s.Require().NoError(err)
	s.Equal(user, gotUser)
	s.Equal(pair, gotPair)
	s.tokenSvc.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := hashedUser(s.T(), 7, "kari@example.com", "Str0ng!Pass")
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(user, nil).Once()

	_, _, err := s.service.Login(s.ctx, domain.ProviderLocal, portssvc.AuthCredentials{Email: "kari@example.com", Password: "Wr0ng!Pass"})

	s.ErrorIs(err, apperrors.ErrBadCredentials)
	s.tokenSvc.AssertNotCalled(s.T(), "IssueTokenPair", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := s.service.Login(s.ctx, "", portssvc.AuthCredentials{Email: "ghost@example.com", Password: "Str0ng!Pass"})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestLogin_UnverifiedUser() {
	user := hashedUser(s.T(), 7, "kari@example.com", "Str0ng!Pass")
	user.Verified = false
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(user, nil).Once()

	_, _, err := s.service.Login(s.ctx, "", portssvc.AuthCredentials{Email: "kari@example.com", Password: "Str0ng!Pass"})

	s.ErrorIs(err, apperrors.ErrUnverified)
}

func (s *AuthServiceTestSuite) TestLogin_FederatedUserHasNoLocalCredentials() {
	user := hashedUser(s.T(), 7, "kari@example.com", "Str0ng!Pass")
	user.PasswordHash = nil
	user.Salt = nil
	user.AuthProvider = domain.ProviderGoogle
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(user, nil).Once()

	_, _, err := s.service.Login(s.ctx, "", portssvc.AuthCredentials{Email: "kari@example.com", Password: "Str0ng!Pass"})

	s.ErrorIs(err, apperrors.ErrBadCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownStrategy() {
	_, _, err := s.service.Login(s.ctx, "auth0", portssvc.AuthCredentials{Email: "kari@example.com", Password: "Str0ng!Pass"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestLogin_DispatchesToNamedStrategy() {
	user := &domain.User{UserID: 9, Email: "kari@example.com", Role: domain.RoleUser, Verified: true}
	pair := &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	creds := portssvc.AuthCredentials{IDToken: "google-id-token"}

	google := &MockAuthStrategy{name: domain.ProviderGoogle}
	google.On("Authenticate", mock.Anything, creds).Return(user, nil).Once()
	strategies := []portssvc.AuthStrategy{
		services.NewLocalAuthStrategy(s.userRepo),
		google,
	}
	svc := services.NewAuthService(testConfig(), s.userRepo, s.tokenRepo, s.tokenSvc, s.mailer, strategies, discardLogger())
	s.tokenSvc.On("IssueTokenPair", mock.Anything, user).Return(pair, nil).Once()

	gotUser, gotPair, err := svc.Login(s.ctx, domain.ProviderGoogle, creds)

	s.Require().NoError(err)
	s.Equal(user, gotUser)
	s.Equal(pair, gotPair)
	google.AssertExpectations(s.T())
	s.userRepo.AssertNotCalled(s.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestVerifyEmail_Success() {
	vt := &domain.VerificationToken{TokenID: 3, UserID: 7, Token: "tok", Expiration: time.Now().Add(time.Hour)}
	verified := &domain.User{UserID: 7, Email: "kari@example.com", Verified: true}
	s.tokenRepo.On("FindValidToken", mock.Anything, "tok", mock.AnythingOfType("time.Time")).Return(vt, nil).Once()
	s.tokenRepo.On("DeleteToken", mock.Anything, int64(3)).Return(nil).Once()
	s.userRepo.On("MarkUserVerified", mock.Anything, int64(7)).Return(nil).Once()
	s.userRepo.On("FindUserByID", mock.Anything, int64(7)).Return(verified, nil).Once()

	user, err := s.service.VerifyEmail(s.ctx, "tok")

	s.Require().NoError(err)
	s.True(user.Verified)
	s.tokenRepo.AssertExpectations(s.T())
	s.userRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestVerifyEmail_UnknownToken() {
	s.tokenRepo.On("FindValidToken", mock.Anything, "bogus", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.VerifyEmail(s.ctx, "bogus")

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrInvalidOrExpiredToken)
	s.userRepo.AssertNotCalled(s.T(), "MarkUserVerified", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset_Success() {
	user := &domain.User{UserID: 7, Email: "kari@example.com"}
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(user, nil).Once()
	s.tokenRepo.On("SaveToken", mock.Anything, mock.AnythingOfType("domain.VerificationToken")).Return(int64(1), nil).Once()
	s.mailer.On("SendPasswordResetEmail", mock.Anything, "kari@example.com", mock.AnythingOfType("string")).Return(nil).Once()

	err := s.service.RequestPasswordReset(s.ctx, "kari@example.com")

	s.Require().NoError(err)
	s.mailer.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset_UnknownEmailSucceedsSilently() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.RequestPasswordReset(s.ctx, "ghost@example.com")

	s.NoError(err)
	s.tokenRepo.AssertNotCalled(s.T(), "SaveToken", mock.Anything, mock.Anything)
	s.mailer.AssertNotCalled(s.T(), "SendPasswordResetEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResetPassword_Success() {
	vt := &domain.VerificationToken{TokenID: 3, UserID: 7, Token: "tok", Expiration: time.Now().Add(time.Hour)}
	s.tokenRepo.On("FindValidToken", mock.Anything, "tok", mock.AnythingOfType("time.Time")).Return(vt, nil).Once()
	s.tokenRepo.On("DeleteToken", mock.Anything, int64(3)).Return(nil).Once()

	var newHash, newSalt []byte
	s.userRepo.On("UpdateUserPassword", mock.Anything, int64(7), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			newHash = args.Get(2).([]byte)
			newSalt = args.Get(3).([]byte)
		}).Return(nil).Once()

	err := s.service.ResetPassword(s.ctx, "tok", "N3w!Passwd")

	s.Require().NoError(err)
	s.Len(newHash, utils.HashKeyLength)
	s.Len(newSalt, utils.MinSaltLength)
	ok, err := utils.VerifyPassword(s.ctx, "N3w!Passwd", newSalt, newHash)
	s.Require().NoError(err)
	s.True(ok)
	s.tokenRepo.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestResetPassword_RejectsWeakPassword() {
	err := s.service.ResetPassword(s.ctx, "tok", "weak")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.tokenRepo.AssertNotCalled(s.T(), "FindValidToken", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResetPassword_ExpiredToken() {
	s.tokenRepo.On("FindValidToken", mock.Anything, "old", mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.ResetPassword(s.ctx, "old", "N3w!Passwd")

	s.ErrorIs(err, apperrors.ErrInvalidOrExpiredToken)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUserPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_Success() {
	user := &domain.User{UserID: 7, Email: "kari@example.com"}
	pair := &domain.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	s.tokenSvc.On("ValidateRefreshToken", mock.Anything, "refresh").Return(user, nil).Once()
	s.tokenSvc.On("IssueTokenPair", mock.Anything, user).Return(pair, nil).Once()

	got, err := s.service.RefreshTokens(s.ctx, "refresh")

	s.Require().NoError(err)
	s.Equal(pair, got)
	s.tokenSvc.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRefreshTokens_InvalidToken() {
	s.tokenSvc.On("ValidateRefreshToken", mock.Anything, "garbage").Return(nil, apperrors.ErrInvalidToken).Once()

	pair, err := s.service.RefreshTokens(s.ctx, "garbage")

	s.Nil(pair)
	s.ErrorIs(err, apperrors.ErrInvalidToken)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// TestRegistrationVerifyLoginFlow drives the registration, verification and
// login path end to end against mocked storage, with real hashing and a real
// local strategy in the middle.
func TestRegistrationVerifyLoginFlow(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockTokenRepository)
	tokenSvc := new(MockTokenService)
	mailer := new(MockMailer)
	svc := services.NewAuthService(testConfig(), userRepo, tokenRepo, tokenSvc, mailer,
		[]portssvc.AuthStrategy{services.NewLocalAuthStrategy(userRepo)}, discardLogger())

	var stored domain.User
	userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		stored = user
		stored.UserID = 7
		return 7, nil
	}

	var mailedToken string
	tokenRepo.On("SaveToken", mock.Anything, mock.AnythingOfType("domain.VerificationToken")).Return(int64(3), nil).Once()
	mailer.On("SendVerificationEmail", mock.Anything, "kari@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { mailedToken = args.String(2) }).Return(nil).Once()

	_, err := svc.Register(ctx, "Kari", "Nordmann", "kari@example.com", "Str0ng!Pass")
	require.NoError(t, err)
	require.NotEmpty(t, mailedToken)

	vt := &domain.VerificationToken{TokenID: 3, UserID: 7, Token: mailedToken, Expiration: time.Now().Add(time.Hour)}
	tokenRepo.On("FindValidToken", mock.Anything, mailedToken, mock.AnythingOfType("time.Time")).Return(vt, nil).Once()
	tokenRepo.On("DeleteToken", mock.Anything, int64(3)).Return(nil).Once()
	userRepo.On("MarkUserVerified", mock.Anything, int64(7)).Return(nil).Once().
		Run(func(args mock.Arguments) { stored.Verified = true })
	userRepo.FindUserByIDFn = func(ctx context.Context, userID int64) (*domain.User, error) {
		u := stored
		return &u, nil
	}

	verified, err := svc.VerifyEmail(ctx, mailedToken)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	userRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		u := stored
		return &u, nil
	}
	pair := &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	tokenSvc.On("IssueTokenPair", mock.Anything, mock.AnythingOfType("*domain.User")).Return(pair, nil).Once()

	user, got, err := svc.Login(ctx, "", portssvc.AuthCredentials{Email: "kari@example.com", Password: "Str0ng!Pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, pair, got)
}
