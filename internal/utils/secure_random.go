package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	b, err := GenerateSecureRandomBytes(lengthInBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateSecureRandomBytes returns lengthInBytes of cryptographically secure
// random data. Used for password salts, which stay raw bytes.
func GenerateSecureRandomBytes(lengthInBytes int) ([]byte, error) {
	if lengthInBytes <= 0 {
		return nil, fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
