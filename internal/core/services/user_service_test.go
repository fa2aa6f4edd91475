package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/core/services"
	"github.com/techhype/cardlink_backend/internal/dto"
	"github.com/techhype/cardlink_backend/internal/utils/pagination"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.userRepo)
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestGetUserByID_Success() {
	expected := &domain.User{UserID: 7, Email: "kari@example.com"}
	s.userRepo.On("FindUserByID", mock.Anything, int64(7)).Return(expected, nil).Once()

	user, err := s.service.GetUserByID(s.ctx, 7)

	s.Require().NoError(err)
	s.Equal(expected, user)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestGetUserByID_NotFound() {
	s.userRepo.On("FindUserByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	user, err := s.service.GetUserByID(s.ctx, 99)

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestGetUserByID_RepositoryError() {
	s.userRepo.On("FindUserByID", mock.Anything, int64(7)).Return(nil, errors.New("connection refused")).Once()

	user, err := s.service.GetUserByID(s.ctx, 7)

	s.Nil(user)
	s.Error(err)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestListUsers_FullPageReturnsNextToken() {
	now := time.Now()
	users := []domain.User{
		{UserID: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: 2, CreatedAt: now.Add(-1 * time.Hour)},
	}
	s.userRepo.On("FindUsers", mock.Anything, 2, time.Time{}).Return(users, nil).Once()

	got, nextToken, err := s.service.ListUsers(s.ctx, 2, "")

	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal(pagination.EncodeToken(users[1].CreatedAt), nextToken)
}

func (s *UserServiceTestSuite) TestListUsers_PartialPageEndsPagination() {
	users := []domain.User{{UserID: 1, CreatedAt: time.Now()}}
	s.userRepo.On("FindUsers", mock.Anything, 20, time.Time{}).Return(users, nil).Once()

	got, nextToken, err := s.service.ListUsers(s.ctx, 0, "")

	s.Require().NoError(err)
	s.Len(got, 1)
	s.Empty(nextToken)
}

func (s *UserServiceTestSuite) TestListUsers_ResumesAfterCursor() {
	cursor := time.Now().Add(-time.Hour).Truncate(time.Second)
	s.userRepo.On("FindUsers", mock.Anything, 5, mock.MatchedBy(func(after time.Time) bool {
		return after.Equal(cursor)
	})).Return([]domain.User{}, nil).Once()

	_, _, err := s.service.ListUsers(s.ctx, 5, pagination.EncodeToken(cursor))

	s.Require().NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestListUsers_InvalidToken() {
	users, nextToken, err := s.service.ListUsers(s.ctx, 5, "not-a-cursor")

	s.Nil(users)
	s.Empty(nextToken)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.userRepo.AssertNotCalled(s.T(), "FindUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateUser_Self() {
	existing := &domain.User{UserID: 7, FirstName: "Kari", LastName: "Nordmann"}
	s.userRepo.On("FindUserByID", mock.Anything, int64(7)).Return(existing, nil).Once()
	s.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == 7 && u.FirstName == "Karianne" && u.LastName == "Nordmann"
	})).Return(nil).Once()

	newFirst := "Karianne"
	user, err := s.service.UpdateUser(s.ctx, 7, dto.UpdateUserRequest{FirstName: &newFirst}, 7)

	s.Require().NoError(err)
	s.Equal("Karianne", user.FirstName)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateUser_AdminActsOnOther() {
	admin := &domain.User{UserID: 1, Role: domain.RoleAdmin}
	target := &domain.User{UserID: 7, FirstName: "Kari"}
	s.userRepo.On("FindUserByID", mock.Anything, int64(1)).Return(admin, nil).Once()
	s.userRepo.On("FindUserByID", mock.Anything, int64(7)).Return(target, nil).Once()
	s.userRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil).Once()

	newLast := "Hansen"
	_, err := s.service.UpdateUser(s.ctx, 7, dto.UpdateUserRequest{LastName: &newLast}, 1)

	s.Require().NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateUser_NonAdminActsOnOtherForbidden() {
	requester := &domain.User{UserID: 2, Role: domain.RoleUser}
	s.userRepo.On("FindUserByID", mock.Anything, int64(2)).Return(requester, nil).Once()

	newFirst := "Eve"
	user, err := s.service.UpdateUser(s.ctx, 7, dto.UpdateUserRequest{FirstName: &newFirst}, 2)

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_AdminOnly() {
	requester := &domain.User{UserID: 2, Role: domain.RoleUser}
	s.userRepo.On("FindUserByID", mock.Anything, int64(2)).Return(requester, nil).Once()

	err := s.service.DeleteUser(s.ctx, 7, 2)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_Success() {
	admin := &domain.User{UserID: 1, Role: domain.RoleAdmin}
	s.userRepo.On("FindUserByID", mock.Anything, int64(1)).Return(admin, nil).Once()
	s.userRepo.On("DeleteUser", mock.Anything, int64(7)).Return(nil).Once()

	err := s.service.DeleteUser(s.ctx, 7, 1)

	s.Require().NoError(err)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestFindOrCreateFederatedUser_ExistingAccount() {
	existing := &domain.User{UserID: 7, Email: "kari@example.com"}
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(existing, nil).Once()

	user, err := s.service.FindOrCreateFederatedUser(s.ctx, domain.ProviderGoogle, &domain.GoogleUserInfo{Email: "kari@example.com"})

	s.Require().NoError(err)
	s.Equal(existing, user)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestFindOrCreateFederatedUser_CreatesVerifiedPasswordlessUser() {
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	s.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		saved = user
		return 7, nil
	}

	info := &domain.GoogleUserInfo{
		Email:      "kari@example.com",
		GivenName:  "Kari",
		FamilyName: "Nordmann",
	}
	user, err := s.service.FindOrCreateFederatedUser(s.ctx, domain.ProviderGoogle, info)

	s.Require().NoError(err)
	s.Equal(int64(7), user.UserID)
	s.True(saved.Verified)
	s.Equal(domain.ProviderGoogle, saved.AuthProvider)
	s.False(saved.HasLocalCredentials())
}

func (s *UserServiceTestSuite) TestFindOrCreateFederatedUser_LosesCreationRace() {
	winner := &domain.User{UserID: 7, Email: "kari@example.com", Verified: true}
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(nil, apperrors.ErrNotFound).Once()
	s.userRepo.SaveUserFn = func(ctx context.Context, user domain.User) (int64, error) {
		return 0, apperrors.ErrDuplicateEmail
	}
	s.userRepo.On("FindUserByEmail", mock.Anything, "kari@example.com").Return(winner, nil).Once()

	user, err := s.service.FindOrCreateFederatedUser(s.ctx, domain.ProviderGoogle, &domain.GoogleUserInfo{Email: "kari@example.com"})

	s.Require().NoError(err)
	s.Equal(winner, user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
