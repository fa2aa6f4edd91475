package dto

// RegisterRequest is the signup payload for local accounts.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest carries login credentials. Strategy selects the auth strategy;
// empty means local. Local logins fill Email/Password, federated logins fill
// IDToken.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IDToken  string `json:"idToken"`
	Strategy string `json:"strategy,omitempty"`
}

// LoginResponse is the public shape returned on successful login. Hash and
// salt are internal and never serialized outward.
type LoginResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Verified     bool   `json:"verified"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenRequest carries the refresh token when it is not presented as a cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse returns the rotated token pair.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest asks for a password-reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest carries the replacement password; the token arrives as
// a path segment.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}
