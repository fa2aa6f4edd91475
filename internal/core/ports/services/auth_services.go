package services

import (
	"context"

	"github.com/techhype/cardlink_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthCredentials carries whatever a strategy needs to authenticate a user.
// Local logins fill Email/Password; federated logins fill IDToken.
type AuthCredentials struct {
	Email    string
	Password string
	IDToken  string
}

// AuthStrategy is one way of proving a user's identity. Strategies are
// registered at startup from configuration; the historical copies of the
// auth layer (local, Auth0, Firebase, OAuth) become implementations of this
// single interface instead of parallel code paths.
type AuthStrategy interface {
	// Name identifies the strategy ("local", "google", ...).
	Name() string

	// Authenticate resolves credentials to a user or fails with one of the
	// apperrors sentinels.
	Authenticate(ctx context.Context, creds AuthCredentials) (*domain.User, error)
}

// AuthSvcFacade is the identity & token service: the only reader/writer of
// user and verification-token records for authentication flows.
type AuthSvcFacade interface {
	// Register creates an unverified local user, issues a verification token
	// and dispatches the verification mail.
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)

	// Login authenticates via the named strategy (empty means local) and
	// issues an access/refresh token pair.
	Login(ctx context.Context, strategy string, creds AuthCredentials) (*domain.User, *domain.TokenPair, error)

	// VerifyEmail consumes an unexpired verification token and marks the
	// owning user verified.
	VerifyEmail(ctx context.Context, token string) (*domain.User, error)

	// RequestPasswordReset issues a reset token and mails it. Unknown emails
	// succeed silently so the endpoint cannot be used to enumerate accounts.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and replaces the user's hash+salt.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// RefreshTokens validates a refresh token and rotates both tokens for the
	// same user.
	RefreshTokens(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

// TokenSvcFacade defines the interface for signed-token issuance.
type TokenSvcFacade interface {
	// IssueTokenPair signs fresh access and refresh tokens for the user.
	IssueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error)

	// ValidateRefreshToken checks a refresh token's signature and expiry and
	// returns the user it is bound to.
	ValidateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}

// Mailer is the outbound mail collaborator. Delivery failures are reported
// but never roll back the token/user writes already committed.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to string, token string) error
	SendPasswordResetEmail(ctx context.Context, to string, token string) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
