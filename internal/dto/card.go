package dto

import "github.com/techhype/cardlink_backend/internal/core/domain"

// CreateCardRequest creates a card for the authenticated user.
type CreateCardRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCardRequest updates mutable card fields. Pointers distinguish omitted
// fields from zero values.
type UpdateCardRequest struct {
	Name     *string `json:"name"`
	Active   *bool   `json:"active"`
	Designed *bool   `json:"designed"`
}

// CardResponse is the public projection of a card.
type CardResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
	Designed bool   `json:"designed"`
	URL      string `json:"url,omitempty"`
}

// ToCardResponse converts a domain Card (and optional URL) to its projection.
func ToCardResponse(card *domain.Card, cardURL *domain.CardURL) CardResponse {
	resp := CardResponse{
		ID:       card.CardID,
		Name:     card.Name,
		Active:   card.Active,
		Designed: card.Designed,
	}
	if cardURL != nil {
		resp.URL = cardURL.URL
	}
	return resp
}

// ToCardListResponse converts a slice of domain cards.
func ToCardListResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, len(cards))
	for i := range cards {
		out[i] = ToCardResponse(&cards[i], nil)
	}
	return out
}
