package domain

import "errors"

// Sentinel errors shared by the repository and service layers. Handlers map
// them to HTTP statuses; anything else is treated as a backend failure.
var (
	// ErrNotFound covers both missing documents and malformed identifiers.
	ErrNotFound = errors.New("not found")

	// ErrNoSession means the presented token resolves to no authenticated user.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCredentials is deliberately generic so callers cannot tell an
	// unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken rejects duplicate registrations.
	ErrEmailTaken = errors.New("email already registered")
)
