package domain

import "errors"

var (
	// ErrUnknownPosition means the registry was asked about a slot id it
	// does not declare. Given a validated registry this is unreachable.
	ErrUnknownPosition = errors.New("unknown equipment position")

	// ErrMalformedRecord means a stored preset row does not match the
	// expected model shape. Such rows are skipped, not fatal.
	ErrMalformedRecord = errors.New("malformed preset record")

	// ErrNotFound means the requested preset does not exist.
	ErrNotFound = errors.New("preset not found")

	// ErrNotOwner means the caller does not own the preset it tried to
	// modify.
	ErrNotOwner = errors.New("preset not owned by caller")
)
