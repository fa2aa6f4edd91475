package services

import (
	"log/slog"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	portsrepo "github.com/techhype/cardlink_backend/internal/core/ports/repositories"
	portssvc "github.com/techhype/cardlink_backend/internal/core/ports/services"
	"github.com/techhype/cardlink_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	// Auth strategies are selected by configuration; unknown names are skipped
	// with a warning rather than failing startup.
	var strategies []portssvc.AuthStrategy
	for _, name := range cfg.AuthStrategies {
		switch name {
		case domain.ProviderLocal:
			strategies = append(strategies, NewLocalAuthStrategy(repos.UserRepo))
		case domain.ProviderGoogle:
			strategies = append(strategies, NewGoogleAuthStrategy(container.GoogleOAuthHandler, container.User))
		default:
			logger.Warn("ignoring unknown auth strategy", slog.String("strategy", name))
		}
	}

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.TokenRepo, container.Token, mailer, strategies, logger)
	container.Card = NewCardService(repos.CardRepo)
	container.CardProfile = NewCardProfileService(repos.CardProfileRepo, repos.CardRepo)

	return container
}
