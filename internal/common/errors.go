// Package common holds error values shared between services and handlers
package common

import "errors"

var (
	// ErrConflict is returned when a uniqueness constraint would be
	// violated, e.g. registering an email twice
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that responses don't confirm account existence
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordNotSet means the account was created through Google and
	// has no password to compare against
	ErrPasswordNotSet = errors.New("password not set")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)
