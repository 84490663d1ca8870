package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/pkg/logger"
	"github.com/okian/contacts/pkg/metrics"
)

// GetAllContacts reads the whole contact list from a repository.
type GetAllContacts struct {
	repo   ContactReader
	logger logger.Logger
}

// NewGetAllContacts creates the use case over repo.
func NewGetAllContacts(repo ContactReader, opts ...Option) *GetAllContacts {
	o := applyOptions(opts)
	return &GetAllContacts{repo: repo, logger: o.logger}
}

// Execute returns every contact in repository order. A nil result from the
// repository is normalised to an empty slice.
func (u *GetAllContacts) Execute(ctx context.Context) (contacts []model.Contact, err error) {
	const op = "usecase." + getAllContactsName
	start := time.Now()
	defer func() {
		metrics.RecordUseCaseExecution(getAllContactsName, float64(time.Since(start).Microseconds())/1000, err)
	}()

	if u.repo == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoRepository)
	}

	contacts, err = u.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	u.logger.Debug(ctx, "listed contacts", logger.Int("count", len(contacts)))
	return contacts, nil
}

var _ GetAllContactsUseCase = (*GetAllContacts)(nil)
