package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication errors.

	// ErrNoCredentials indicates the user has no stored token for the
	// requested provider.
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrNoLinkedAccount indicates the user has no social account
	// linked for the requested provider.
	ErrNoLinkedAccount = errors.New("no linked account")

	// ErrUnsupportedProvider indicates a provider identifier outside
	// the supported set.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrPrivateReposDisabled indicates private-repository access is
	// switched off in the application configuration.
	ErrPrivateReposDisabled = errors.New("private repositories disabled")
)
