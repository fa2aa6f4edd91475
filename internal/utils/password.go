package utils

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"runtime"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for password hashing. Changing these invalidates every
// stored hash, so they are fixed constants rather than configuration.
const (
	HashIterations = 310000
	HashKeyLength  = 32
	MinSaltLength  = 16
)

// hashSem bounds the number of concurrent key derivations so a burst of
// signups cannot pin every core on KDF work. Each derivation is ~310k HMAC
// rounds of CPU time.
var hashSem = make(chan struct{}, runtime.GOMAXPROCS(0))

// HashPassword derives a 32-byte key from the password and salt using
// PBKDF2-HMAC-SHA256. The salt must be caller-supplied, cryptographically
// random and at least 16 bytes. Empty passwords are hashed, not rejected;
// password policy is enforced by the caller.
func HashPassword(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if len(salt) < MinSaltLength {
		return nil, fmt.Errorf("salt must be at least %d bytes, got %d", MinSaltLength, len(salt))
	}
	select {
	case hashSem <- struct{}{}:
		defer func() { <-hashSem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return pbkdf2.Key([]byte(password), salt, HashIterations, HashKeyLength, sha256.New), nil
}

// VerifyPassword recomputes the derived key for the password and compares it
// with the expected hash in constant time. It never short-circuits on the
// first differing byte.
func VerifyPassword(ctx context.Context, password string, salt []byte, expected []byte) (bool, error) {
	derived, err := HashPassword(ctx, password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}
