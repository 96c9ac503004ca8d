package services

import "errors"

// Sentinel errors returned by the account and job services. Handlers branch
// on these with errors.Is; wrapped variants carry field context.
var (
	// ErrDuplicateUsername is returned when registering a username that is
	// already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a record does not exist or is owned by a
	// different account. The two cases are deliberately indistinguishable so
	// that no response leaks the existence of another account's records.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a required field is empty.
	ErrValidation = errors.New("validation failed")
)
