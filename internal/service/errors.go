package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// so that login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotAuthorized is returned when an authenticated user attempts to
	// modify an account other than their own.
	ErrNotAuthorized = errors.New("not authorized to modify this user")

	// ErrEmailRequired is returned when a deletion request carries no email.
	ErrEmailRequired = errors.New("email required for deletion")
)
