package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps each of these
// to a deterministic status code in internal/api/error_handler.go.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidState       = errors.New("booking status does not allow this operation")
	ErrSpaceNotFound      = errors.New("space not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateReview    = errors.New("review already exists for this space")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
