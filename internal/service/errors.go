package service

import "errors"

var (
	// ErrValidation covers malformed or missing input; the caller must
	// correct and resubmit.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is deliberately uniform for unknown phone and
	// wrong password, so login failures never reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid phone number or password")

	// ErrUnauthenticated means the session token is missing, revoked or
	// expired.
	ErrUnauthenticated = errors.New("not logged in")
)
