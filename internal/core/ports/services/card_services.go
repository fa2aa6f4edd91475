package services

import (
	"context"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/dto"
)

// CardSvcFacade defines operations on cards. Every operation is scoped to the
// requesting user; acting on another user's card fails with ErrForbidden.
type CardSvcFacade interface {
	// CreateCard creates a card for the user and mints its shareable URL.
	CreateCard(ctx context.Context, userID int64, req dto.CreateCardRequest) (*domain.Card, *domain.CardURL, error)

	// GetCard retrieves one of the user's cards.
	GetCard(ctx context.Context, userID, cardID int64) (*domain.Card, error)

	// ListCards retrieves all cards owned by the user.
	ListCards(ctx context.Context, userID int64) ([]domain.Card, error)

	// UpdateCard updates name/active. Designed latches true: once a card's
	// design is submitted, further design edits are rejected.
	UpdateCard(ctx context.Context, userID, cardID int64, req dto.UpdateCardRequest) (*domain.Card, error)

	// DeleteCard removes a card and its profiles.
	DeleteCard(ctx context.Context, userID, cardID int64) error
}

// CardProfileSvcFacade defines operations on card profiles and their
// address/work/social sub-records.
type CardProfileSvcFacade interface {
	// CreateProfile attaches a profile to a card. The first profile of a card
	// becomes active.
	CreateProfile(ctx context.Context, userID, cardID int64, req dto.CardProfileRequest) (*domain.CardProfile, error)

	// GetProfile retrieves a profile with its sub-records.
	GetProfile(ctx context.Context, userID, profileID int64) (*dto.CardProfileDetail, error)

	// ListProfiles retrieves all profiles of a card.
	ListProfiles(ctx context.Context, userID, cardID int64) ([]domain.CardProfile, error)

	// UpdateProfile updates a profile's presentational fields.
	UpdateProfile(ctx context.Context, userID, profileID int64, req dto.CardProfileRequest) (*domain.CardProfile, error)

	// SetActiveProfile makes the profile the card's single active one.
	SetActiveProfile(ctx context.Context, userID, profileID int64) error

	// DeleteProfile removes a profile and its sub-records.
	DeleteProfile(ctx context.Context, userID, profileID int64) error

	UpsertAddress(ctx context.Context, userID, profileID int64, req dto.AddressRequest) (*domain.Address, error)
	UpsertWorkInfo(ctx context.Context, userID, profileID int64, req dto.WorkInfoRequest) (*domain.WorkInfo, error)
	UpsertSocialMedia(ctx context.Context, userID, profileID int64, req dto.SocialMediaRequest) (*domain.SocialMedia, error)

	DeleteAddress(ctx context.Context, userID, profileID int64) error
	DeleteWorkInfo(ctx context.Context, userID, profileID int64) error
	DeleteSocialMedia(ctx context.Context, userID, profileID int64) error
}
