package utils

import (
	"regexp"
	"unicode"
)

// Password policy: 8-16 characters with at least one upper-case letter, one
// lower-case letter, one digit and one symbol, and no spaces.
const (
	PasswordMinLength = 8
	PasswordMaxLength = 16
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether the address matches standard email syntax.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword reports whether the password satisfies the policy. Go's
// regexp has no lookaheads, so the character-class requirements are checked
// explicitly instead of with a single pattern.
func IsValidPassword(password string) bool {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r == ' ':
			return false
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
