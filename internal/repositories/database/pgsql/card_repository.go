package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	"github.com/techhype/cardlink_backend/internal/models"
	"github.com/techhype/cardlink_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCardRepository struct {
	db *pgxpool.Pool
}

func newPgxCardRepository(db *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &PgxCardRepository{db: db}
}

var _ portsrepo.CardRepositoryFacade = (*PgxCardRepository)(nil)

func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) (int64, error) {
	m := mapping.ToModelCard(card)
	query := `
        INSERT INTO cards (user_id, name, active, designed, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING card_id;
    `
	var cardID int64
	err := r.db.QueryRow(ctx, query, m.UserID, m.Name, m.Active, m.Designed, m.CreatedAt).Scan(&cardID)
	if err != nil {
		return 0, fmt.Errorf("failed to save card: %w", err)
	}
	return cardID, nil
}

func (r *PgxCardRepository) FindCardByID(ctx context.Context, cardID int64) (*domain.Card, error) {
	query := `
        SELECT card_id, user_id, name, active, designed, created_at
        FROM cards
        WHERE card_id = $1;
    `
	var m models.Card
	err := r.db.QueryRow(ctx, query, cardID).Scan(&m.CardID, &m.UserID, &m.Name, &m.Active, &m.Designed, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by ID %d: %w", cardID, err)
	}
	d := mapping.ToDomainCard(m)
	return &d, nil
}

func (r *PgxCardRepository) FindCardsByUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	query := `
        SELECT card_id, user_id, name, active, designed, created_at
        FROM cards
        WHERE user_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards for user %d: %w", userID, err)
	}
	defer rows.Close()

	modelCards := []models.Card{}
	for rows.Next() {
		var m models.Card
		if err := rows.Scan(&m.CardID, &m.UserID, &m.Name, &m.Active, &m.Designed, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		modelCards = append(modelCards, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", rows.Err())
	}

	return mapping.ToDomainCardSlice(modelCards), nil
}

func (r *PgxCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	query := `
        UPDATE cards
        SET name = $1, active = $2, designed = $3
        WHERE card_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, card.Name, card.Active, card.Designed, card.CardID)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.CardID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardRepository) DeleteCard(ctx context.Context, cardID int64) error {
	// Profiles and the card URL cascade via foreign keys.
	query := `DELETE FROM cards WHERE card_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", cardID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardRepository) SaveCardURL(ctx context.Context, cardURL domain.CardURL) (int64, error) {
	query := `
        INSERT INTO card_urls (card_id, user_id, url)
        VALUES ($1, $2, $3)
        RETURNING card_url_id;
    `
	var id int64
	err := r.db.QueryRow(ctx, query, cardURL.CardID, cardURL.UserID, cardURL.URL).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, apperrors.ErrDuplicate
		}
		return 0, fmt.Errorf("failed to save card url: %w", err)
	}
	return id, nil
}

func (r *PgxCardRepository) FindCardURLByCard(ctx context.Context, cardID int64) (*domain.CardURL, error) {
	query := `
        SELECT card_url_id, card_id, user_id, url
        FROM card_urls
        WHERE card_id = $1;
    `
	var m models.CardURL
	err := r.db.QueryRow(ctx, query, cardID).Scan(&m.CardURLID, &m.CardID, &m.UserID, &m.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card url for card %d: %w", cardID, err)
	}
	d := mapping.ToDomainCardURL(m)
	return &d, nil
}
