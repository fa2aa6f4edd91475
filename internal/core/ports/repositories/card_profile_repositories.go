package repositories

import (
	"context"

	"github.com/techhype/cardlink_backend/internal/core/domain"
)

// CardProfileReader defines read operations for card profiles and their sub-records
type CardProfileReader interface {
	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, profileID int64) (*domain.CardProfile, error)

	// FindProfilesByCard retrieves all profiles attached to a card.
	FindProfilesByCard(ctx context.Context, cardID int64) ([]domain.CardProfile, error)

	// CountProfilesByCard returns the number of profiles attached to a card.
	CountProfilesByCard(ctx context.Context, cardID int64) (int, error)

	FindAddressByProfile(ctx context.Context, profileID int64) (*domain.Address, error)
	FindWorkInfoByProfile(ctx context.Context, profileID int64) (*domain.WorkInfo, error)
	FindSocialMediaByProfile(ctx context.Context, profileID int64) (*domain.SocialMedia, error)
}

// CardProfileWriter defines write operations for card profiles and their sub-records
type CardProfileWriter interface {
	// SaveProfile persists a new profile and returns its generated ID.
	SaveProfile(ctx context.Context, profile domain.CardProfile) (int64, error)

	// UpdateProfile updates a profile's presentational fields.
	UpdateProfile(ctx context.Context, profile domain.CardProfile) error

	// DeleteProfile removes a profile; sub-records cascade at the storage layer.
	DeleteProfile(ctx context.Context, profileID int64) error

	// SetActiveProfile deactivates every profile of the card, then activates
	// the given one, inside a single transaction.
	SetActiveProfile(ctx context.Context, cardID, profileID int64) error

	// The sub-record upserts rely on the unique card_profile_id constraint:
	// one row per profile, inserted or replaced.
	UpsertAddress(ctx context.Context, address domain.Address) error
	UpsertWorkInfo(ctx context.Context, workInfo domain.WorkInfo) error
	UpsertSocialMedia(ctx context.Context, socialMedia domain.SocialMedia) error

	DeleteAddress(ctx context.Context, profileID int64) error
	DeleteWorkInfo(ctx context.Context, profileID int64) error
	DeleteSocialMedia(ctx context.Context, profileID int64) error
}

// CardProfileRepositoryFacade combines all profile-related repository interfaces
type CardProfileRepositoryFacade interface {
	CardProfileReader
	CardProfileWriter
}
