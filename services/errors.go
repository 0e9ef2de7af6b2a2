package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input. *ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned for unknown usernames and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated covers missing, malformed, forged and expired tokens.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound is returned for absent records and ids that are not well formed.
	ErrNotFound = errors.New("not found")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}
