package pgsql

import (
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	tokenRepo := newPgxTokenRepository(dbPool)
	cardRepo := newPgxCardRepository(dbPool)
	cardProfileRepo := newPgxCardProfileRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		TokenRepo:       tokenRepo,
		CardRepo:        cardRepo,
		CardProfileRepo: cardProfileRepo,
	}
}
