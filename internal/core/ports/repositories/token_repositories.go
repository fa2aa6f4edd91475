package repositories

import (
	"context"
	"time"

	"github.com/techhype/cardlink_backend/internal/core/domain"
)

// TokenRepositoryFacade owns storage of verification/reset tokens. Tokens are
// opaque strings looked up by exact match; expiry is enforced at lookup time,
// never by a background sweep.
type TokenRepositoryFacade interface {
	// SaveToken persists a new token and returns its generated ID.
	SaveToken(ctx context.Context, token domain.VerificationToken) (int64, error)

	// FindValidToken returns the token with the given value whose expiration
	// is after now, or apperrors.ErrNotFound.
	FindValidToken(ctx context.Context, token string, now time.Time) (*domain.VerificationToken, error)

	// DeleteToken removes a consumed token.
	DeleteToken(ctx context.Context, tokenID int64) error
}
