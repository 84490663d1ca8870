// Package service composes the contact store and use cases that the HTTP
// API depends on.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/contacts/internal/adapters/repository"
	"github.com/okian/contacts/internal/adapters/repository/mongostore"
	"github.com/okian/contacts/internal/domain/usecase"
	"github.com/okian/contacts/pkg/logger"
	"github.com/okian/contacts/pkg/metrics"
)

// Service owns the contact store and the use cases built on top of it.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	storeName string
	ownsStore bool
	// set when Stop closed a store supplied through WithStore
	storeClosed bool
	getAll    *usecase.GetAllContacts
	create    *usecase.CreateContact

	// Configuration
	generateIDs bool
	sanitize    bool

	// State
	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the backing store. Without it Start creates a MemoryStore.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
			s.storeName = storeName(store)
			s.storeClosed = false
		}
	}
}

// WithGenerateIDs controls whether contacts posted without an id get a UUID.
func WithGenerateIDs(enabled bool) Option {
	return func(s *Service) {
		s.generateIDs = enabled
	}
}

// WithSanitize controls whether contact fields are stripped of markup.
func WithSanitize(enabled bool) Option {
	return func(s *Service) {
		s.sanitize = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		generateIDs: true,
		sanitize:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the use cases over the configured store.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("service start: %w", err)
	}
	if s.storeClosed {
		return fmt.Errorf("service start: %s store: %w", s.storeName, repository.ErrClosed)
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore()
		s.storeName = memoryStore
		s.ownsStore = true
	}

	ucOpts := []usecase.Option{usecase.WithLogger(s.logger.Named("usecase"))}
	if s.generateIDs {
		ucOpts = append(ucOpts, usecase.WithIDGenerator(uuid.NewString))
	} else {
		ucOpts = append(ucOpts, usecase.WithIDGenerator(nil))
	}
	if s.sanitize {
		ucOpts = append(ucOpts, usecase.WithSanitizer(usecase.NewStrictSanitizer()))
	}

	s.getAll = usecase.NewGetAllContacts(s.store, ucOpts...)
	s.create = usecase.NewCreateContact(s.store, ucOpts...)

	s.started = true
	s.logger.Info(ctx, "contacts service started",
		logger.String("store", s.storeName),
		logger.Bool("generateIDs", s.generateIDs),
		logger.Bool("sanitize", s.sanitize),
	)
	return nil
}

// Stop closes the store. It is safe to call more than once. A store created
// by Start is replaced on the next Start; one supplied through WithStore is
// not reopened, so a later Start fails with repository.ErrClosed.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false
	s.getAll, s.create = nil, nil

	s.logger.Info(ctx, "stopping contacts service...")
	err := s.store.Close(ctx)
	if s.ownsStore {
		s.store, s.ownsStore = nil, false
	} else {
		s.storeClosed = true
	}
	if err != nil {
		return fmt.Errorf("service stop: %w", err)
	}
	s.logger.Info(ctx, "contacts service stopped")
	return nil
}

// GetAllContacts returns the list use case, or nil before Start.
func (s *Service) GetAllContacts() usecase.GetAllContactsUseCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.getAll == nil {
		return nil
	}
	return s.getAll
}

// CreateContact returns the create use case, or nil before Start.
func (s *Service) CreateContact() usecase.CreateContactUseCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.create == nil {
		return nil
	}
	return s.create
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":     s.started,
		"store":       s.storeName,
		"generateIDs": s.generateIDs,
		"sanitize":    s.sanitize,
	}

	if s.started {
		total, err := s.store.Count(context.Background())
		if err != nil {
			stats["error"] = err.Error()
			return stats
		}
		stats["totalContacts"] = total
		metrics.UpdateContactsTotal(total)
	}

	return stats
}

const (
	memoryStore = "memory"
	mongoStore  = "mongo"
	customStore = "custom"
)

func storeName(store repository.Store) string {
	switch store.(type) {
	case *repository.MemoryStore:
		return memoryStore
	case *mongostore.Store:
		return mongoStore
	default:
		return customStore
	}
}
