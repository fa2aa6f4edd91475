package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn    func(ctx context.Context, userID int64) (*domain.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	SaveUserFn        func(ctx context.Context, user domain.User) (int64, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, after time.Time) ([]domain.User, error) {
	args := m.Called(ctx, limit, after)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID int64, hash, salt []byte) error {
	args := m.Called(ctx, userID, hash, salt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserVerified(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock TokenRepository ---
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SaveToken(ctx context.Context, token domain.VerificationToken) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) FindValidToken(ctx context.Context, token string, now time.Time) (*domain.VerificationToken, error) {
	args := m.Called(ctx, token, now)
	var vt *domain.VerificationToken
	if args.Get(0) != nil {
		vt = args.Get(0).(*domain.VerificationToken)
	}
	return vt, args.Error(1)
}

func (m *MockTokenRepository) DeleteToken(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, to string, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, to string, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}

// --- Mock CardRepository ---
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	var card *domain.Card
	if args.Get(0) != nil {
		card = args.Get(0).(*domain.Card)
	}
	return card, args.Error(1)
}

func (m *MockCardRepository) FindCardsByUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	var cards []domain.Card
	if args.Get(0) != nil {
		cards = args.Get(0).([]domain.Card)
	}
	return cards, args.Error(1)
}

func (m *MockCardRepository) FindCardURLByCard(ctx context.Context, cardID int64) (*domain.CardURL, error) {
	args := m.Called(ctx, cardID)
	var cardURL *domain.CardURL
	if args.Get(0) != nil {
		cardURL = args.Get(0).(*domain.CardURL)
	}
	return cardURL, args.Error(1)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) (int64, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, cardID int64) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCardRepository) SaveCardURL(ctx context.Context, cardURL domain.CardURL) (int64, error) {
	args := m.Called(ctx, cardURL)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CardProfileRepository ---
type MockCardProfileRepository struct {
	mock.Mock
}

func (m *MockCardProfileRepository) FindProfileByID(ctx context.Context, profileID int64) (*domain.CardProfile, error) {
	args := m.Called(ctx, profileID)
	var profile *domain.CardProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.CardProfile)
	}
	return profile, args.Error(1)
}

func (m *MockCardProfileRepository) FindProfilesByCard(ctx context.Context, cardID int64) ([]domain.CardProfile, error) {
	args := m.Called(ctx, cardID)
	var profiles []domain.CardProfile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.CardProfile)
	}
	return profiles, args.Error(1)
}

func (m *MockCardProfileRepository) CountProfilesByCard(ctx context.Context, cardID int64) (int, error) {
	args := m.Called(ctx, cardID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardProfileRepository) FindAddressByProfile(ctx context.Context, profileID int64) (*domain.Address, error) {
	args := m.Called(ctx, profileID)
	var addr *domain.Address
	if args.Get(0) != nil {
		addr = args.Get(0).(*domain.Address)
	}
	return addr, args.Error(1)
}

func (m *MockCardProfileRepository) FindWorkInfoByProfile(ctx context.Context, profileID int64) (*domain.WorkInfo, error) {
	args := m.Called(ctx, profileID)
	var wi *domain.WorkInfo
	if args.Get(0) != nil {
		wi = args.Get(0).(*domain.WorkInfo)
	}
	return wi, args.Error(1)
}

func (m *MockCardProfileRepository) FindSocialMediaByProfile(ctx context.Context, profileID int64) (*domain.SocialMedia, error) {
	args := m.Called(ctx, profileID)
	var sm *domain.SocialMedia
	if args.Get(0) != nil {
		sm = args.Get(0).(*domain.SocialMedia)
	}
	return sm, args.Error(1)
}

func (m *MockCardProfileRepository) SaveProfile(ctx context.Context, profile domain.CardProfile) (int64, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardProfileRepository) UpdateProfile(ctx context.Context, profile domain.CardProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCardProfileRepository) DeleteProfile(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCardProfileRepository) SetActiveProfile(ctx context.Context, cardID, profileID int64) error {
	args := m.Called(ctx, cardID, profileID)
	return args.Error(0)
}

func (m *MockCardProfileRepository) UpsertAddress(ctx context.Context, address domain.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockCardProfileRepository) UpsertWorkInfo(ctx context.Context, workInfo domain.WorkInfo) error {
	args := m.Called(ctx, workInfo)
	return args.Error(0)
}

func (m *MockCardProfileRepository) UpsertSocialMedia(ctx context.Context, socialMedia domain.SocialMedia) error {
	args := m.Called(ctx, socialMedia)
	return args.Error(0)
}

func (m *MockCardProfileRepository) DeleteAddress(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCardProfileRepository) DeleteWorkInfo(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockCardProfileRepository) DeleteSocialMedia(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	args := m.Called(ctx, user)
	var pair *domain.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*domain.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, refreshToken)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock AuthStrategy ---
type MockAuthStrategy struct {
	mock.Mock
	name string
}

func (m *MockAuthStrategy) Name() string { return m.name }

func (m *MockAuthStrategy) Authenticate(ctx context.Context, creds portssvc.AuthCredentials) (*domain.User, error) {
	args := m.Called(ctx, creds)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
