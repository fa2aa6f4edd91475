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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, first_name, last_name, email, encrypted_password, salt, role, verified, auth_provider, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.EncryptedPassword,
		&m.Salt,
		&m.Role,
		&m.Verified,
		&m.AuthProvider,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (first_name, last_name, email, encrypted_password, salt, role, verified, auth_provider, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING user_id;
    `
	var userID int64
	err := r.db.QueryRow(ctx, query,
		m.FirstName,
		m.LastName,
		m.Email,
		m.EncryptedPassword,
		m.Salt,
		m.Role,
		m.Verified,
		m.AuthProvider,
		m.CreatedAt,
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, apperrors.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to save user: %w", err)
	}
	return userID, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, after time.Time) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE created_at > $1
        ORDER BY created_at ASC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, user.FirstName, user.LastName, user.UserID)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserPassword(ctx context.Context, userID int64, hash, salt []byte) error {
	query := `
        UPDATE users
        SET encrypted_password = $1, salt = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, hash, salt, userID)
	if err != nil {
		return fmt.Errorf("failed to update password for user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserVerified(ctx context.Context, userID int64) error {
	query := `UPDATE users SET verified = TRUE WHERE user_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user %d verified: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	// Admin accounts are never deleted.
	query := `DELETE FROM users WHERE user_id = $1 AND role <> 'Admin';`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
