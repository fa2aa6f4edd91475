package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/core/services"
	"github.com/techhype/cardlink_backend/internal/dto"
)

type CardProfileServiceTestSuite struct {
	suite.Suite
	profileRepo *MockCardProfileRepository
	cardRepo    *MockCardRepository
	service     portssvc.CardProfileSvcFacade
	ctx         context.Context
}

func (s *CardProfileServiceTestSuite) SetupTest() {
	s.profileRepo = new(MockCardProfileRepository)
	s.cardRepo = new(MockCardRepository)
	s.service = services.NewCardProfileService(s.profileRepo, s.cardRepo)
	s.ctx = context.Background()
}

func (s *CardProfileServiceTestSuite) ownedCard() *domain.Card {
	return &domain.Card{CardID: 11, UserID: 7}
}

func (s *CardProfileServiceTestSuite) TestCreateProfile_FirstProfileIsActive() {
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("CountProfilesByCard", mock.Anything, int64(11)).Return(0, nil).Once()
	s.profileRepo.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p domain.CardProfile) bool {
		return p.CardID == 11 && p.Active
	})).Return(int64(31), nil).Once()

	profile, err := s.service.CreateProfile(s.ctx, 7, 11, dto.CardProfileRequest{Name: "Default"})

	s.Require().NoError(err)
	s.Equal(int64(31), profile.CardProfileID)
	s.True(profile.Active)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestCreateProfile_LaterProfilesAreInactive() {
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("CountProfilesByCard", mock.Anything, int64(11)).Return(1, nil).Once()
	s.profileRepo.On("SaveProfile", mock.Anything, mock.MatchedBy(func(p domain.CardProfile) bool {
		return !p.Active
	})).Return(int64(32), nil).Once()

	profile, err := s.service.CreateProfile(s.ctx, 7, 11, dto.CardProfileRequest{Name: "Second"})

	s.Require().NoError(err)
	s.False(profile.Active)
}

func (s *CardProfileServiceTestSuite) TestCreateProfile_CardOwnedByOtherUser() {
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(&domain.Card{CardID: 11, UserID: 99}, nil).Once()

	profile, err := s.service.CreateProfile(s.ctx, 7, 11, dto.CardProfileRequest{Name: "Default"})

	s.Nil(profile)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.profileRepo.AssertNotCalled(s.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (s *CardProfileServiceTestSuite) TestGetProfile_LoadsSubRecords() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11, Name: "Default"}
	addr := &domain.Address{AddressID: 41, CardProfileID: 31, City: "Oslo"}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("FindAddressByProfile", mock.Anything, int64(31)).Return(addr, nil).Once()
	s.profileRepo.On("FindWorkInfoByProfile", mock.Anything, int64(31)).Return(nil, apperrors.ErrNotFound).Once()
	s.profileRepo.On("FindSocialMediaByProfile", mock.Anything, int64(31)).Return(nil, apperrors.ErrNotFound).Once()

	detail, err := s.service.GetProfile(s.ctx, 7, 31)

	s.Require().NoError(err)
	s.Equal("Default", detail.Profile.Name)
	s.Require().NotNil(detail.Address)
	s.Equal("Oslo", detail.Address.City)
	s.Nil(detail.WorkInfo)
	s.Nil(detail.SocialMedia)
}

func (s *CardProfileServiceTestSuite) TestUpdateProfile_ReplacesFields() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11, Name: "Old", Phone: "123"}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(p domain.CardProfile) bool {
		return p.Name == "New" && p.Phone == ""
	})).Return(nil).Once()

	got, err := s.service.UpdateProfile(s.ctx, 7, 31, dto.CardProfileRequest{Name: "New"})

	s.Require().NoError(err)
	s.Equal("New", got.Name)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestSetActiveProfile() {
	profile := &domain.CardProfile{CardProfileID: 32, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(32)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("SetActiveProfile", mock.Anything, int64(11), int64(32)).Return(nil).Once()

	err := s.service.SetActiveProfile(s.ctx, 7, 32)

	s.Require().NoError(err)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestSetActiveProfile_NotOwner() {
	profile := &domain.CardProfile{CardProfileID: 32, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(32)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(&domain.Card{CardID: 11, UserID: 99}, nil).Once()

	err := s.service.SetActiveProfile(s.ctx, 7, 32)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.profileRepo.AssertNotCalled(s.T(), "SetActiveProfile", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CardProfileServiceTestSuite) TestDeleteProfile() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("DeleteProfile", mock.Anything, int64(31)).Return(nil).Once()

	err := s.service.DeleteProfile(s.ctx, 7, 31)

	s.Require().NoError(err)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestUpsertAddress() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("UpsertAddress", mock.Anything, mock.MatchedBy(func(a domain.Address) bool {
		return a.CardProfileID == 31 && a.City == "Oslo"
	})).Return(nil).Once()

	addr, err := s.service.UpsertAddress(s.ctx, 7, 31, dto.AddressRequest{Country: "Norway", City: "Oslo"})

	s.Require().NoError(err)
	s.Equal("Oslo", addr.City)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestUpsertWorkInfo() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("UpsertWorkInfo", mock.Anything, mock.MatchedBy(func(w domain.WorkInfo) bool {
		return w.CardProfileID == 31 && w.Company == "Techhype"
	})).Return(nil).Once()

	work, err := s.service.UpsertWorkInfo(s.ctx, 7, 31, dto.WorkInfoRequest{Company: "Techhype", Position: "CTO"})

	s.Require().NoError(err)
	s.Equal("Techhype", work.Company)
}

func (s *CardProfileServiceTestSuite) TestDeleteAddress() {
	profile := &domain.CardProfile{CardProfileID: 31, CardID: 11}
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(profile, nil).Once()
	s.cardRepo.On("FindCardByID", mock.Anything, int64(11)).Return(s.ownedCard(), nil).Once()
	s.profileRepo.On("DeleteAddress", mock.Anything, int64(31)).Return(nil).Once()

	err := s.service.DeleteAddress(s.ctx, 7, 31)

	s.Require().NoError(err)
	s.profileRepo.AssertExpectations(s.T())
}

func (s *CardProfileServiceTestSuite) TestUpsertSocialMedia_ProfileNotFound() {
	s.profileRepo.On("FindProfileByID", mock.Anything, int64(31)).Return(nil, apperrors.ErrNotFound).Once()

	sm, err := s.service.UpsertSocialMedia(s.ctx, 7, 31, dto.SocialMediaRequest{})

	s.Nil(sm)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCardProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardProfileServiceTestSuite))
}
