// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Domain errors surfaced as {detail} responses.
	ErrorActivityNotFound   = errors.New("activity not found")
	ErrorAlreadySignedUp    = errors.New("student is already signed up")
	ErrorNotSignedUp        = errors.New("student is not signed up for this activity")
	ErrorActivityFull       = errors.New("activity is full")
	ErrorInvalidCredentials = errors.New("invalid username or password")
	ErrorSessionExpired     = errors.New("invalid or expired session")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
)
