package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims are the claims carried by both access and refresh tokens: the
// user id (as the subject), email, and role.
type AuthClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the numeric user id.
func (c *AuthClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// GenerateJWT signs an HS256 token for the given user with the provided
// secret, lifetime, and issuer.
func GenerateJWT(userID int64, email, role, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the AuthClaims if the token is valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err // includes token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	return claims, nil
}
