package mapping

import (
	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/models"
)

// ToModelCard converts a domain Card to a model Card
func ToModelCard(d domain.Card) models.Card {
	return models.Card{
		CardID:    d.CardID,
		UserID:    d.UserID,
		Name:      d.Name,
		Active:    d.Active,
		Designed:  d.Designed,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCard converts a model Card to a domain Card
func ToDomainCard(m models.Card) domain.Card {
	return domain.Card{
		CardID:    m.CardID,
		UserID:    m.UserID,
		Name:      m.Name,
		Active:    m.Active,
		Designed:  m.Designed,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCardSlice converts a slice of model Cards to domain Cards
func ToDomainCardSlice(ms []models.Card) []domain.Card {
	ds := make([]domain.Card, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCard(m)
	}
	return ds
}

// ToDomainCardURL converts a model CardURL to its domain form
func ToDomainCardURL(m models.CardURL) domain.CardURL {
	return domain.CardURL{
		CardURLID: m.CardURLID,
		CardID:    m.CardID,
		UserID:    m.UserID,
		URL:       m.URL,
	}
}
