package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a registered account.
// EncryptedPassword and Salt are NULL for federated accounts.
type User struct {
	UserID            int64          `json:"userID" db:"user_id"`
	FirstName         string         `json:"firstName" db:"first_name"`
	LastName          string         `json:"lastName" db:"last_name"`
	Email             string         `json:"email" db:"email"`
	EncryptedPassword []byte         `json:"-" db:"encrypted_password"`
	Salt              []byte         `json:"-" db:"salt"`
	Role              string         `json:"role" db:"role"`
	Verified          bool           `json:"verified" db:"verified"`
	AuthProvider      sql.NullString `json:"-" db:"auth_provider"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
}
