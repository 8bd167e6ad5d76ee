package domain

import "errors"

// ErrNotFound is returned by state and service functions when the requested
// item or session does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. end date before start date, bad move direction).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOutOfRange is returned by positional item-store operations when the
// given position is outside [0, len). The store is left unchanged.
// Handlers should map this to HTTP 422 with code "out_of_range".
var ErrOutOfRange = errors.New("position out of range")
