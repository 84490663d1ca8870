// Package repository defines the contact store interface and errors.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/metrics"
)

const memoryStoreName = "memory"

// MemoryStore is an in-memory Store that keeps contacts in insertion order.
type MemoryStore struct {
	mu       sync.RWMutex
	contacts []model.Contact
	index    map[string]int // id -> position in contacts
	closed   bool

	initialCapacity int
	seed            []model.Contact
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}

	s.contacts = make([]model.Contact, 0, s.initialCapacity)
	s.index = make(map[string]int, s.initialCapacity)
	for _, c := range s.seed {
		if _, ok := s.index[c.ID]; ok {
			continue
		}
		s.index[c.ID] = len(s.contacts)
		s.contacts = append(s.contacts, c)
	}
	s.seed = nil

	metrics.UpdateContactsTotal(len(s.contacts))
	return s
}

// Create appends c to the store.
func (s *MemoryStore) Create(ctx context.Context, c model.Contact) (err error) {
	const op = "create"
	start := time.Now()
	defer func() { observe(op, start, err) }()

	if cerr := ctx.Err(); cerr != nil {
		return fmt.Errorf("repository.%s: %w", op, cerr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, ok := s.index[c.ID]; ok {
		return fmt.Errorf("repository.%s %q: %w", op, c.ID, ErrAlreadyExists)
	}
	s.index[c.ID] = len(s.contacts)
	s.contacts = append(s.contacts, c)
	metrics.UpdateContactsTotal(len(s.contacts))
	return nil
}

// FindAll returns a copy of all contacts in insertion order.
func (s *MemoryStore) FindAll(ctx context.Context) (out []model.Contact, err error) {
	const op = "find_all"
	start := time.Now()
	defer func() { observe(op, start, err) }()

	if cerr := ctx.Err(); cerr != nil {
		return nil, fmt.Errorf("repository.%s: %w", op, cerr)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	out = make([]model.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

// Count returns the number of stored contacts.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrClosed
	}
	return len(s.contacts), nil
}

// Close marks the store closed and drops its contents.
func (s *MemoryStore) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.contacts = nil
	s.index = nil
	return nil
}

func observe(op string, start time.Time, err error) {
	metrics.RecordRepositoryOperation(memoryStoreName, op, float64(time.Since(start).Microseconds())/1000, err)
}
