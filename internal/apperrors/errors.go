package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateEmail indicates that the email address is already registered.
var ErrDuplicateEmail = errors.New("email already in use")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnverified indicates a login attempt by a user who has not verified their email.
var ErrUnverified = errors.New("email not verified")

// ErrBadCredentials indicates that the supplied password did not match.
var ErrBadCredentials = errors.New("incorrect email or password")

// ErrInvalidOrExpiredToken indicates a verification or reset token that is
// unknown, already consumed, or past its expiration.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

// ErrInvalidToken indicates a refresh token that failed signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// ErrForbidden indicates an authenticated request that is not allowed to act
// on the target resource.
var ErrForbidden = errors.New("forbidden")
