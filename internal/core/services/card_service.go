package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/dto"
)

type CardService struct {
	cardRepo portsrepo.CardRepositoryFacade
}

func NewCardService(cardRepo portsrepo.CardRepositoryFacade) portssvc.CardSvcFacade {
	return &CardService{cardRepo: cardRepo}
}

var _ portssvc.CardSvcFacade = (*CardService)(nil)

func (s *CardService) CreateCard(ctx context.Context, userID int64, req dto.CreateCardRequest) (*domain.Card, *domain.CardURL, error) {
	card := domain.Card{
		UserID:    userID,
		Name:      req.Name,
		Active:    true,
		Designed:  false,
		CreatedAt: time.Now(),
	}
	cardID, err := s.cardRepo.SaveCard(ctx, card)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save card in service: %w", err)
	}
	card.CardID = cardID

	cardURL, err := s.mintCardURL(ctx, cardID, userID)
	if err != nil {
		return nil, nil, err
	}
	return &card, cardURL, nil
}

// mintCardURL generates a random slug for the card, retrying once if the slug
// collides with an existing one.
func (s *CardService) mintCardURL(ctx context.Context, cardID, userID int64) (*domain.CardURL, error) {
	for attempt := 0; attempt < 2; attempt++ {
		cardURL := domain.CardURL{
			CardID: cardID,
			UserID: userID,
			URL:    uuid.NewString(),
		}
		id, err := s.cardRepo.SaveCardURL(ctx, cardURL)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return nil, fmt.Errorf("failed to save card URL in service: %w", err)
		}
		cardURL.CardURLID = id
		return &cardURL, nil
	}
	return nil, fmt.Errorf("failed to mint a unique card URL for card %d", cardID)
}

func (s *CardService) GetCard(ctx context.Context, userID, cardID int64) (*domain.Card, error) {
	return s.findOwnedCard(ctx, userID, cardID)
}

func (s *CardService) ListCards(ctx context.Context, userID int64) ([]domain.Card, error) {
	cards, err := s.cardRepo.FindCardsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards in service: %w", err)
	}
	return cards, nil
}

func (s *CardService) UpdateCard(ctx context.Context, userID, cardID int64, req dto.UpdateCardRequest) (*domain.Card, error) {
	card, err := s.findOwnedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.Active != nil {
		card.Active = *req.Active
	}
	if req.Designed != nil {
		// Designed latches: once submitted it cannot be cleared again.
		if card.Designed && !*req.Designed {
			return nil, fmt.Errorf("%w: card design is already submitted", apperrors.ErrValidation)
		}
		card.Designed = *req.Designed
	}

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		return nil, fmt.Errorf("failed to update card in service: %w", err)
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, userID, cardID int64) error {
	if _, err := s.findOwnedCard(ctx, userID, cardID); err != nil {
		return err
	}
	return s.cardRepo.DeleteCard(ctx, cardID)
}

// findOwnedCard fetches a card and checks the requesting user owns it.
func (s *CardService) findOwnedCard(ctx context.Context, userID, cardID int64) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card in service: %w", err)
	}
	if card.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return card, nil
}
