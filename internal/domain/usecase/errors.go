package usecase

import "errors"

// Sentinel kinds for use case errors.
var (
	ErrNoRepository  = errors.New("no repository configured")
	ErrEmptyID       = errors.New("contact id is empty")
	ErrUnsafeContent = errors.New("contact contains markup")
)
