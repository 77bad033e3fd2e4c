package services

import "errors"

// Domain failures returned to callers as structured errors. All of them are
// recoverable; none aborts the process.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidState    = errors.New("invalid state")
	ErrNotFriends      = errors.New("users are not friends")
	ErrConflict        = errors.New("conflict")
	ErrEmptyContent    = errors.New("message content cannot be empty")
)

// Dispatcher pushes a payload to a user's private real-time channel.
// Delivery is best-effort and at-most-once: implementations log and swallow
// failures, and a target without a live connection is a no-op.
type Dispatcher interface {
	SendToUser(email string, payload any)
}
