// Package common defines shared constants and sentinel errors used across
// client and server layers of gophnotes. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrUniqueViolation = errors.New("unique constraint violation")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("unauthorized action")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")

	// Share lifecycle errors.
	ErrSelfShare              = errors.New("you cannot share a note with yourself")
	ErrReceiverNotFound       = errors.New("receiver not found")
	ErrNotOwnerOrNoteMissing  = errors.New("note not found or you are not the owner")
	ErrAlreadyPending         = errors.New("share request already pending")
	ErrAlreadyShared          = errors.New("note already shared with this user")
	ErrRequestNotFound        = errors.New("share request not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)
