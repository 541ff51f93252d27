// Package common defines shared sentinel errors used across the NovaBiz
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (empty required fields).
	ErrorValidation = errors.New("validation error")

	// Auth flow errors. ErrorInvalidCredentials deliberately does not say
	// whether the email or the password was wrong.
	ErrorEmailTaken         = errors.New("email already exists")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorNotAuthenticated   = errors.New("not authenticated")
)
