package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrAlreadyExists = errors.New("contact already exists")
	ErrClosed        = errors.New("store closed")
)
