package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/logger"
	"github.com/okian/contacts/pkg/metrics"
)

// CreateContact persists contacts through a repository, optionally assigning
// an id and rejecting markup first.
type CreateContact struct {
	repo      ContactWriter
	newID     func() string
	sanitizer Sanitizer
	logger    logger.Logger
}

// NewCreateContact creates the use case over repo.
func NewCreateContact(repo ContactWriter, opts ...Option) *CreateContact {
	o := applyOptions(opts)
	return &CreateContact{
		repo:      repo,
		newID:     o.newID,
		sanitizer: o.sanitizer,
		logger:    o.logger,
	}
}

// Execute stores c and reports true on success.
func (u *CreateContact) Execute(ctx context.Context, c model.Contact) (created bool, err error) {
	const op = "usecase." + createContactName
	start := time.Now()
	defer func() {
		metrics.RecordUseCaseExecution(createContactName, float64(time.Since(start).Microseconds())/1000, err)
	}()

	if u.repo == nil {
		return false, fmt.Errorf("%s: %w", op, ErrNoRepository)
	}

	if u.sanitizer != nil {
		if err := checkContact(u.sanitizer, c); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}
	if c.ID == "" {
		if u.newID == nil {
			return false, fmt.Errorf("%s: %w", op, ErrEmptyID)
		}
		c.ID = u.newID()
	}

	if err := u.repo.Create(ctx, c); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordContactCreated()
	u.logger.Info(ctx, "contact created", logger.String("id", c.ID))
	return true, nil
}

var _ CreateContactUseCase = (*CreateContact)(nil)
