package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidOwner       = errors.New("invalid user id")
	// ErrNotFoundOrForbidden collapses "no such entry" and "not your
	// entry" into one answer for the same reason.
	ErrNotFoundOrForbidden = errors.New("entry does not exist or user has no permission to access it")
)

// ValidationError carries a client-correctable message about malformed
// or out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }
