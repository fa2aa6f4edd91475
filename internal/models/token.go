package models

import "time"

// VerificationToken is the database representation of a single-use
// verification or password-reset token.
type VerificationToken struct {
	TokenID    int64     `json:"tokenID" db:"token_id"`
	UserID     int64     `json:"userID" db:"user_id"`
	Token      string    `json:"-" db:"token"`
	Expiration time.Time `json:"expiration" db:"expiration"`
}
