// Package common defines shared sentinel errors and small helpers used across
// deckkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors (no matching account or resource).
	ErrorNotFound = errors.New("not found")

	// Session / account errors.
	ErrorAuthRequired      = errors.New("authentication required")
	ErrorInvalidCredential = errors.New("invalid password")
	ErrorDuplicateEmail    = errors.New("user already exists")
	ErrorDuplicateUsername = errors.New("username already taken")

	// Input errors.
	ErrorValidation = errors.New("validation error")

	// Token errors (malformed or past its expiry).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
