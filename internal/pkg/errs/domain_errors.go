package errs

import "errors"

// Error taxonomy shared by the webhook and sync paths. Concrete errors are
// attached to one of these with Mark so handlers can map them to responses.
var (
	// Bad or missing webhook signature. Always fail closed.
	ErrUnauthorized = errors.New("unauthorized")

	// No local entity matches the external reference. Not retriable.
	ErrNotFound = errors.New("not found")

	// Event or timeline row already recorded. Treated as success.
	ErrDuplicate = errors.New("duplicate")

	// The CRM API call failed. Safe to retry.
	ErrUpstream = errors.New("upstream error")

	// Missing or malformed input, rejected before any side effect.
	ErrValidation = errors.New("validation error")

	// Local transition not allowed by the sinistro state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
