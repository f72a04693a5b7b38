package services

import "errors"

// Sentinel errors translated to HTTP statuses at the API boundary.
var (
	// ErrInvalidLogin covers both unknown username and wrong password so the
	// response cannot be used to enumerate accounts.
	ErrInvalidLogin = errors.New("invalid login")

	// ErrUsernameTaken indicates a sign-up with an already registered username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotFound indicates a missing entry. An entry owned by a different
	// user reports the same error so ownership is never leaked.
	ErrNotFound = errors.New("entry not found")
)
