package users

import "errors"

var (
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email or password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the account does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("users service: internal error")
)
