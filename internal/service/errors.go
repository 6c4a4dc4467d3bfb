package service

import (
	"errors"
	"fmt"
)

// Domain errors returned to the HTTP layer.
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrSKUTaken           = errors.New("product with this SKU already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError reports a field that violates its constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
