package domain

import "time"

// Roles assignable to a user.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// Auth providers recognised by the service.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents a registered account in the domain.
// PasswordHash and Salt are both nil for federated accounts (no local password).
type User struct {
	UserID       int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	Salt         []byte
	Role         string
	Verified     bool
	AuthProvider string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasLocalCredentials reports whether the user can authenticate with a password.
func (u *User) HasLocalCredentials() bool {
	return len(u.PasswordHash) > 0 && len(u.Salt) > 0
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume
// when provisioning a federated account.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}
