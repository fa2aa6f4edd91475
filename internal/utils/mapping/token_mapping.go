package mapping

import (
	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/models"
)

// ToModelVerificationToken converts a domain VerificationToken to its model
func ToModelVerificationToken(d domain.VerificationToken) models.VerificationToken {
	return models.VerificationToken{
		TokenID:    d.TokenID,
		UserID:     d.UserID,
		Token:      d.Token,
		Expiration: d.Expiration,
	}
}

// ToDomainVerificationToken converts a model VerificationToken to its domain form
func ToDomainVerificationToken(m models.VerificationToken) domain.VerificationToken {
	return domain.VerificationToken{
		TokenID:    m.TokenID,
		UserID:     m.UserID,
		Token:      m.Token,
		Expiration: m.Expiration,
	}
}
