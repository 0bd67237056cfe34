package models

import "errors"

// Error categories shared across the service and handler layers. Services
// wrap these with context via fmt.Errorf("...: %w", ...); handlers pick a
// status code with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate")
)
