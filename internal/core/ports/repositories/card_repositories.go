package repositories

import (
	"context"

	"github.com/techhype/cardlink_backend/internal/core/domain"
)

// CardReader defines read operations for cards
type CardReader interface {
	// FindCardByID retrieves a card by its ID.
	FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error)

	// FindCardsByUser retrieves all cards owned by a user.
	FindCardsByUser(ctx context.Context, userID int64) ([]domain.Card, error)

	// FindCardURLByCard retrieves the shareable URL minted for a card, if any.
	FindCardURLByCard(ctx context.Context, cardID int64) (*domain.CardURL, error)
}

// CardWriter defines write operations for cards
type CardWriter interface {
	// SaveCard persists a new card and returns its generated ID.
	SaveCard(ctx context.Context, card domain.Card) (int64, error)

	// UpdateCard updates name, active and designed flags.
	UpdateCard(ctx context.Context, card domain.Card) error

	// DeleteCard removes a card; profiles cascade at the storage layer.
	DeleteCard(ctx context.Context, cardID int64) error

	// SaveCardURL persists a shareable slug. A unique violation on the URL
	// surfaces as apperrors.ErrDuplicate.
	SaveCardURL(ctx context.Context, cardURL domain.CardURL) (int64, error)
}

// CardRepositoryFacade combines all card-related repository interfaces
type CardRepositoryFacade interface {
	CardReader
	CardWriter
}
