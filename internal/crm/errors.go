package crm

import "errors"

// Domain error kinds. Operations wrap these with a human-readable
// message; callers test with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrForbidden          = errors.New("not allowed, missing credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnavailable        = errors.New("store unavailable")
)
