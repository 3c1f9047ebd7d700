package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or did not produce a response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401: the token is missing, bad, or expired.
	ErrUnauthorized = errors.New("unauthorized")
)
