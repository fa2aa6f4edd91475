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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCardProfileRepository struct {
	BaseRepository
}

func newPgxCardProfileRepository(db *pgxpool.Pool) portsrepo.CardProfileRepositoryFacade {
	return &PgxCardProfileRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CardProfileRepositoryFacade = (*PgxCardProfileRepository)(nil)

const profileColumns = `card_profile_id, card_id, name, active, title, first_name, last_name, image, birthday, phone, email, website, website2`

func scanProfile(row pgx.Row) (*models.CardProfile, error) {
	var m models.CardProfile
	err := row.Scan(
		&m.CardProfileID,
		&m.CardID,
		&m.Name,
		&m.Active,
		&m.Title,
		&m.FirstName,
		&m.LastName,
		&m.Image,
		&m.Birthday,
		&m.Phone,
		&m.Email,
		&m.Website,
		&m.Website2,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCardProfileRepository) SaveProfile(ctx context.Context, profile domain.CardProfile) (int64, error) {
	m := mapping.ToModelCardProfile(profile)
	query := `
        INSERT INTO card_profiles (card_id, name, active, title, first_name, last_name, image, birthday, phone, email, website, website2)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING card_profile_id;
    `
	var profileID int64
	err := r.Pool.QueryRow(ctx, query,
		m.CardID, m.Name, m.Active, m.Title, m.FirstName, m.LastName,
		m.Image, m.Birthday, m.Phone, m.Email, m.Website, m.Website2,
	).Scan(&profileID)
	if err != nil {
		return 0, fmt.Errorf("failed to save card profile: %w", err)
	}
	return profileID, nil
}

func (r *PgxCardProfileRepository) FindProfileByID(ctx context.Context, profileID int64) (*domain.CardProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM card_profiles WHERE card_profile_id = $1;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card profile %d: %w", profileID, err)
	}
	d := mapping.ToDomainCardProfile(*m)
	return &d, nil
}

func (r *PgxCardProfileRepository) FindProfilesByCard(ctx context.Context, cardID int64) ([]domain.CardProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM card_profiles WHERE card_id = $1 ORDER BY card_profile_id ASC;`
	rows, err := r.Pool.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles for card %d: %w", cardID, err)
	}
	defer rows.Close()

	ms := []models.CardProfile{}
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", rows.Err())
	}

	return mapping.ToDomainCardProfileSlice(ms), nil
}

func (r *PgxCardProfileRepository) CountProfilesByCard(ctx context.Context, cardID int64) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM card_profiles WHERE card_id = $1;`, cardID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles for card %d: %w", cardID, err)
	}
	return count, nil
}

func (r *PgxCardProfileRepository) UpdateProfile(ctx context.Context, profile domain.CardProfile) error {
	m := mapping.ToModelCardProfile(profile)
	query := `
        UPDATE card_profiles
        SET name = $1, title = $2, first_name = $3, last_name = $4, image = $5,
            birthday = $6, phone = $7, email = $8, website = $9, website2 = $10
        WHERE card_profile_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Title, m.FirstName, m.LastName, m.Image,
		m.Birthday, m.Phone, m.Email, m.Website, m.Website2,
		m.CardProfileID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card profile %d: %w", m.CardProfileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardProfileRepository) DeleteProfile(ctx context.Context, profileID int64) error {
	// Address/work/social sub-records cascade via foreign keys.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM card_profiles WHERE card_profile_id = $1;`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete card profile %d: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetActiveProfile deactivates every profile of the card and activates the
// given one inside a single transaction, keeping the one-active-profile
// invariant even if the process dies between statements.
func (r *PgxCardProfileRepository) SetActiveProfile(ctx context.Context, cardID, profileID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `UPDATE card_profiles SET active = FALSE WHERE card_id = $1;`, cardID); err != nil {
		return fmt.Errorf("failed to deactivate profiles for card %d: %w", cardID, err)
	}
	cmdTag, err := tx.Exec(ctx, `UPDATE card_profiles SET active = TRUE WHERE card_profile_id = $1 AND card_id = $2;`, profileID, cardID)
	if err != nil {
		return fmt.Errorf("failed to activate profile %d: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCardProfileRepository) FindAddressByProfile(ctx context.Context, profileID int64) (*domain.Address, error) {
	query := `
        SELECT address_id, card_profile_id, country, street, postal_code, state, city
        FROM addresses
        WHERE card_profile_id = $1;
    `
	var m models.Address
	err := r.Pool.QueryRow(ctx, query, profileID).Scan(&m.AddressID, &m.CardProfileID, &m.Country, &m.Street, &m.PostalCode, &m.State, &m.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find address for profile %d: %w", profileID, err)
	}
	d := mapping.ToDomainAddress(m)
	return &d, nil
}

func (r *PgxCardProfileRepository) FindWorkInfoByProfile(ctx context.Context, profileID int64) (*domain.WorkInfo, error) {
	query := `
        SELECT work_info_id, card_profile_id, company, position, work_phone, work_email
        FROM work_infos
        WHERE card_profile_id = $1;
    `
	var m models.WorkInfo
	err := r.Pool.QueryRow(ctx, query, profileID).Scan(&m.WorkInfoID, &m.CardProfileID, &m.Company, &m.Position, &m.WorkPhone, &m.WorkEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work info for profile %d: %w", profileID, err)
	}
	d := mapping.ToDomainWorkInfo(m)
	return &d, nil
}

func (r *PgxCardProfileRepository) FindSocialMediaByProfile(ctx context.Context, profileID int64) (*domain.SocialMedia, error) {
	query := `
        SELECT social_media_id, card_profile_id, facebook_link, linkedin_link, snap_link, instagram_link
        FROM social_medias
        WHERE card_profile_id = $1;
    `
	var m models.SocialMedia
	err := r.Pool.QueryRow(ctx, query, profileID).Scan(&m.SocialMediaID, &m.CardProfileID, &m.FacebookLink, &m.LinkedinLink, &m.SnapLink, &m.InstagramLink)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find social media for profile %d: %w", profileID, err)
	}
	d := mapping.ToDomainSocialMedia(m)
	return &d, nil
}

func (r *PgxCardProfileRepository) UpsertAddress(ctx context.Context, address domain.Address) error {
	query := `
        INSERT INTO addresses (card_profile_id, country, street, postal_code, state, city)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (card_profile_id) DO UPDATE SET
            country = EXCLUDED.country,
            street = EXCLUDED.street,
            postal_code = EXCLUDED.postal_code,
            state = EXCLUDED.state,
            city = EXCLUDED.city;
    `
	_, err := r.Pool.Exec(ctx, query, address.CardProfileID, address.Country, address.Street, address.PostalCode, address.State, address.City)
	if err != nil {
		return fmt.Errorf("failed to upsert address for profile %d: %w", address.CardProfileID, err)
	}
	return nil
}

func (r *PgxCardProfileRepository) UpsertWorkInfo(ctx context.Context, workInfo domain.WorkInfo) error {
	query := `
        INSERT INTO work_infos (card_profile_id, company, position, work_phone, work_email)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (card_profile_id) DO UPDATE SET
            company = EXCLUDED.company,
            position = EXCLUDED.position,
            work_phone = EXCLUDED.work_phone,
            work_email = EXCLUDED.work_email;
    `
	_, err := r.Pool.Exec(ctx, query, workInfo.CardProfileID, workInfo.Company, workInfo.Position, workInfo.WorkPhone, workInfo.WorkEmail)
	if err != nil {
		return fmt.Errorf("failed to upsert work info for profile %d: %w", workInfo.CardProfileID, err)
	}
	return nil
}

func (r *PgxCardProfileRepository) UpsertSocialMedia(ctx context.Context, socialMedia domain.SocialMedia) error {
	query := `
        INSERT INTO social_medias (card_profile_id, facebook_link, linkedin_link, snap_link, instagram_link)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (card_profile_id) DO UPDATE SET
            facebook_link = EXCLUDED.facebook_link,
            linkedin_link = EXCLUDED.linkedin_link,
            snap_link = EXCLUDED.snap_link,
            instagram_link = EXCLUDED.instagram_link;
    `
	_, err := r.Pool.Exec(ctx, query, socialMedia.CardProfileID, socialMedia.FacebookLink, socialMedia.LinkedinLink, socialMedia.SnapLink, socialMedia.InstagramLink)
	if err != nil {
		return fmt.Errorf("failed to upsert social media for profile %d: %w", socialMedia.CardProfileID, err)
	}
	return nil
}

func (r *PgxCardProfileRepository) DeleteAddress(ctx context.Context, profileID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM addresses WHERE card_profile_id = $1;`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete address for profile %d: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardProfileRepository) DeleteWorkInfo(ctx context.Context, profileID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM work_infos WHERE card_profile_id = $1;`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete work info for profile %d: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCardProfileRepository) DeleteSocialMedia(ctx context.Context, profileID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM social_medias WHERE card_profile_id = $1;`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete social media for profile %d: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
