package domain

import "time"

// VerificationToken is an opaque single-use token mailed to a user, used both
// for email verification and for password reset. It is looked up by exact
// match and deleted on consumption; expired rows persist until a lookup
// ignores them.
type VerificationToken struct {
	TokenID    int64
	UserID     int64
	Token      string
	Expiration time.Time
}

// Expired reports whether the token is past its expiration at the given instant.
func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.Expiration)
}

// TokenPair is the signed access/refresh token pair issued on login and on
// every refresh rotation.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}
