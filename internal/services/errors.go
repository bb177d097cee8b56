package services

import "errors"

// Failure kinds surfaced to handlers. Handlers classify with errors.Is and
// map each kind to a status code; anything unrecognized becomes a 500 with a
// generic message.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)
