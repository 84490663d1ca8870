// Package repository defines the contact store interface and errors.
package repository

import "github.com/okian/contacts/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithInitialCapacity preallocates room for n contacts.
func WithInitialCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.initialCapacity = n
		}
	}
}

// WithSeed loads contacts into the store at construction time.
// Seeds with duplicate ids keep the first occurrence.
func WithSeed(contacts ...model.Contact) Option {
	return func(s *MemoryStore) {
		s.seed = append(s.seed, contacts...)
	}
}
