// Package common defines shared constants and sentinel errors used across
// the notekeeper server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation marks malformed or missing required input. User-fixable.
	ErrorValidation = errors.New("validation error")

	// ErrorCascade is returned when the folder-deletion cascade did not
	// complete; the folder deletion is rolled back.
	ErrorCascade = errors.New("cascade error")

	// ErrorUnavailable marks a transient storage failure. The server never
	// retries it; the caller decides on retry policy.
	ErrorUnavailable = errors.New("store unavailable")

	ErrorLoginAlreadyExists = errors.New("login already exists")

	// Auth errors (missing, invalid or malformed token).
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken      = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
