package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techhype/cardlink_backend/internal/apperrors"
	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	"github.com/techhype/cardlink_backend/internal/models"
	"github.com/techhype/cardlink_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTokenRepository struct {
	db *pgxpool.Pool
}

func newPgxTokenRepository(db *pgxpool.Pool) portsrepo.TokenRepositoryFacade {
	return &PgxTokenRepository{db: db}
}

var _ portsrepo.TokenRepositoryFacade = (*PgxTokenRepository)(nil)

func (r *PgxTokenRepository) SaveToken(ctx context.Context, token domain.VerificationToken) (int64, error) {
	m := mapping.ToModelVerificationToken(token)
	query := `
        INSERT INTO tokens (user_id, token, expiration)
        VALUES ($1, $2, $3)
        RETURNING token_id;
    `
	var tokenID int64
	err := r.db.QueryRow(ctx, query, m.UserID, m.Token, m.Expiration).Scan(&tokenID)
	if err != nil {
		return 0, fmt.Errorf("failed to save token: %w", err)
	}
	return tokenID, nil
}

func (r *PgxTokenRepository) FindValidToken(ctx context.Context, token string, now time.Time) (*domain.VerificationToken, error) {
	// Expired rows are excluded here rather than swept by a background job.
	query := `
        SELECT token_id, user_id, token, expiration
        FROM tokens
        WHERE token = $1 AND expiration > $2;
    `
	var m models.VerificationToken
	err := r.db.QueryRow(ctx, query, token, now).Scan(&m.TokenID, &m.UserID, &m.Token, &m.Expiration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find token: %w", err)
	}
	d := mapping.ToDomainVerificationToken(m)
	return &d, nil
}

func (r *PgxTokenRepository) DeleteToken(ctx context.Context, tokenID int64) error {
	query := `DELETE FROM tokens WHERE token_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to delete token %d: %w", tokenID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
