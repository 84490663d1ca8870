// Package usecase defines the application operations the HTTP layer depends on
// and their default implementations over a contact repository.
package usecase

import (
	"context"

	"github.com/okian/contacts/internal/domain/model"
)

// GetAllContactsUseCase lists every known contact.
type GetAllContactsUseCase interface {
	Execute(ctx context.Context) ([]model.Contact, error)
}

// CreateContactUseCase stores a new contact. The boolean reports whether the
// contact was created; failures are returned as errors.
type CreateContactUseCase interface {
	Execute(ctx context.Context, c model.Contact) (bool, error)
}

// ContactReader is the read side of the repository consumed by GetAllContacts.
type ContactReader interface {
	FindAll(ctx context.Context) ([]model.Contact, error)
}

// ContactWriter is the write side of the repository consumed by CreateContact.
type ContactWriter interface {
	Create(ctx context.Context, c model.Contact) error
}

// Use case names used for metrics and error ops.
const (
	getAllContactsName = "get_all_contacts"
	createContactName  = "create_contact"
)
