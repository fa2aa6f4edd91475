package mapping

import (
	"database/sql"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	"github.com/techhype/cardlink_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:            d.UserID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		EncryptedPassword: d.PasswordHash,
		Salt:              d.Salt,
		Role:              d.Role,
		Verified:          d.Verified,
		CreatedAt:         d.CreatedAt,
	}
	if d.AuthProvider != "" {
		m.AuthProvider = sql.NullString{String: d.AuthProvider, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.EncryptedPassword,
		Salt:         m.Salt,
		Role:         m.Role,
		Verified:     m.Verified,
		AuthProvider: m.AuthProvider.String,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
