package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/dto"
)

type CardProfileService struct {
	profileRepo portsrepo.CardProfileRepositoryFacade
	cardRepo    portsrepo.CardRepositoryFacade
}

func NewCardProfileService(profileRepo portsrepo.CardProfileRepositoryFacade, cardRepo portsrepo.CardRepositoryFacade) portssvc.CardProfileSvcFacade {
	return &CardProfileService{profileRepo: profileRepo, cardRepo: cardRepo}
}

var _ portssvc.CardProfileSvcFacade = (*CardProfileService)(nil)

func (s *CardProfileService) CreateProfile(ctx context.Context, userID, cardID int64, req dto.CardProfileRequest) (*domain.CardProfile, error) {
	if err := s.checkCardOwnership(ctx, userID, cardID); err != nil {
		return nil, err
	}

	count, err := s.profileRepo.CountProfilesByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles in service: %w", err)
	}

	profile := domain.CardProfile{
		CardID: cardID,
		Name:   req.Name,
		// The first profile of a card is active by default.
		Active:    count == 0,
		Title:     req.Title,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Image:     req.Image,
		Birthday:  req.Birthday,
		Phone:     req.Phone,
		Email:     req.Email,
		Website:   req.Website,
		Website2:  req.Website2,
	}
	profileID, err := s.profileRepo.SaveProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile in service: %w", err)
	}
	profile.CardProfileID = profileID
	return &profile, nil
}

func (s *CardProfileService) GetProfile(ctx context.Context, userID, profileID int64) (*dto.CardProfileDetail, error) {
	profile, err := s.findOwnedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	detail := dto.CardProfileDetail{Profile: *profile}

	if addr, err := s.profileRepo.FindAddressByProfile(ctx, profileID); err == nil {
		detail.Address = addr
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load address in service: %w", err)
	}
	if work, err := s.profileRepo.FindWorkInfoByProfile(ctx, profileID); err == nil {
		detail.WorkInfo = work
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load work info in service: %w", err)
	}
	if social, err := s.profileRepo.FindSocialMediaByProfile(ctx, profileID); err == nil {
		detail.SocialMedia = social
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load social media in service: %w", err)
	}

	return &detail, nil
}

func (s *CardProfileService) ListProfiles(ctx context.Context, userID, cardID int64) ([]domain.CardProfile, error) {
	if err := s.checkCardOwnership(ctx, userID, cardID); err != nil {
		return nil, err
	}
	profiles, err := s.profileRepo.FindProfilesByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles in service: %w", err)
	}
	return profiles, nil
}

func (s *CardProfileService) UpdateProfile(ctx context.Context, userID, profileID int64, req dto.CardProfileRequest) (*domain.CardProfile, error) {
	profile, err := s.findOwnedProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Title = req.Title
	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Image = req.Image
	profile.Birthday = req.Birthday
	profile.Phone = req.Phone
	profile.Email = req.Email
	profile.Website = req.Website
	profile.Website2 = req.Website2

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile in service: %w", err)
	}
	return profile, nil
}

func (s *CardProfileService) SetActiveProfile(ctx context.Context, userID, profileID int64) error {
	profile, err := s.findOwnedProfile(ctx, userID, profileID)
	if err != nil {
		return err
	}
	return s.profileRepo.SetActiveProfile(ctx, profile.CardID, profileID)
}

func (s *CardProfileService) DeleteProfile(ctx context.Context, userID, profileID int64) error {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return err
	}
	return s.profileRepo.DeleteProfile(ctx, profileID)
}

func (s *CardProfileService) UpsertAddress(ctx context.Context, userID, profileID int64, req dto.AddressRequest) (*domain.Address, error) {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	address := domain.Address{
		CardProfileID: profileID,
		Country:       req.Country,
		Street:        req.Street,
		PostalCode:    req.PostalCode,
		State:         req.State,
		City:          req.City,
	}
	if err := s.profileRepo.UpsertAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to upsert address in service: %w", err)
	}
	return &address, nil
}

func (s *CardProfileService) UpsertWorkInfo(ctx context.Context, userID, profileID int64, req dto.WorkInfoRequest) (*domain.WorkInfo, error) {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	workInfo := domain.WorkInfo{
		CardProfileID: profileID,
		Company:       req.Company,
		Position:      req.Position,
		WorkPhone:     req.WorkPhone,
		WorkEmail:     req.WorkEmail,
	}
	if err := s.profileRepo.UpsertWorkInfo(ctx, workInfo); err != nil {
		return nil, fmt.Errorf("failed to upsert work info in service: %w", err)
	}
	return &workInfo, nil
}

func (s *CardProfileService) UpsertSocialMedia(ctx context.Context, userID, profileID int64, req dto.SocialMediaRequest) (*domain.SocialMedia, error) {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}
	socialMedia := domain.SocialMedia{
		CardProfileID: profileID,
		FacebookLink:  req.FacebookLink,
		LinkedinLink:  req.LinkedinLink,
		SnapLink:      req.SnapLink,
		InstagramLink: req.InstagramLink,
	}
	if err := s.profileRepo.UpsertSocialMedia(ctx, socialMedia); err != nil {
		return nil, fmt.Errorf("failed to upsert social media in service: %w", err)
	}
	return &socialMedia, nil
}

func (s *CardProfileService) DeleteAddress(ctx context.Context, userID, profileID int64) error {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return err
	}
	return s.profileRepo.DeleteAddress(ctx, profileID)
}

func (s *CardProfileService) DeleteWorkInfo(ctx context.Context, userID, profileID int64) error {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return err
	}
	return s.profileRepo.DeleteWorkInfo(ctx, profileID)
}

func (s *CardProfileService) DeleteSocialMedia(ctx context.Context, userID, profileID int64) error {
	if _, err := s.findOwnedProfile(ctx, userID, profileID); err != nil {
		return err
	}
	return s.profileRepo.DeleteSocialMedia(ctx, profileID)
}

// checkCardOwnership verifies the card exists and belongs to the user.
func (s *CardProfileService) checkCardOwnership(ctx context.Context, userID, cardID int64) error {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find card in service: %w", err)
	}
	if card.UserID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// findOwnedProfile fetches a profile and verifies the requesting user owns the
// card it belongs to.
func (s *CardProfileService) findOwnedProfile(ctx context.Context, userID, profileID int64) (*domain.CardProfile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile in service: %w", err)
	}
	if err := s.checkCardOwnership(ctx, userID, profile.CardID); err != nil {
		return nil, err
	}
	return profile, nil
}
