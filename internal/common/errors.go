// Package common defines shared constants and sentinel errors used across
// client and server layers of SkillSwap. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Validation / account errors.
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountBanned      = errors.New("account has been banned")
	ErrValidation         = errors.New("validation error")
	ErrSelfSwap           = errors.New("cannot create swap request to yourself")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrDuplicateRating    = errors.New("rating already exists for this swap")
	ErrSwapNotCompleted   = errors.New("can only rate completed swaps")
	ErrNotSwapParticipant = errors.New("can only rate swaps you were part of")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
