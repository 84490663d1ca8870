package usecase

import (
	"github.com/google/uuid"

	"github.com/okian/contacts/pkg/logger"
)

// Option applies a configuration option to a use case.
type Option func(*options)

type options struct {
	logger    logger.Logger
	newID     func() string
	sanitizer Sanitizer
}

// WithLogger sets a custom logger for the use case.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIDGenerator sets the function used to fill empty contact ids.
// Passing nil disables generation; contacts without an id are then rejected.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// WithSanitizer rejects contacts whose text fields contain markup.
func WithSanitizer(s Sanitizer) Option {
	return func(o *options) {
		o.sanitizer = s
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: logger.Nop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
