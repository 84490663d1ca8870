// Package repository defines the contact store interface and errors.
package repository

import (
	"context"

	"github.com/okian/contacts/internal/domain/model"
)

// Store provides read/write access to the contact collection.
type Store interface {
	// Create persists c. Returns ErrAlreadyExists if c.ID is already stored.
	Create(ctx context.Context, c model.Contact) error

	// FindAll returns every stored contact in insertion order.
	// An empty store yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]model.Contact, error)

	// Count returns the number of stored contacts.
	Count(ctx context.Context) (int, error)

	// Close releases resources; subsequent calls return ErrClosed.
	Close(ctx context.Context) error
}
