package common

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes in utils.ResponseFromError.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
)
