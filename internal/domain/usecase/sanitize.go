package usecase

import (
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/okian/contacts/internal/domain/model"
)

// Sanitizer cleans a single text value.
type Sanitizer interface {
	Sanitize(s string) string
}

// NewStrictSanitizer returns a sanitizer that removes every HTML element.
func NewStrictSanitizer() Sanitizer {
	return bluemonday.StrictPolicy()
}

// checkContact rejects a contact whose text fields would lose content to s.
// The policy escapes entities on output, so both sides are compared unescaped.
// ID is the store key and is never inspected.
func checkContact(s Sanitizer, c model.Contact) error {
	fields := []struct {
		name, value string
	}{
		{"email", c.Email},
		{"firstName", c.FirstName},
		{"pseudo", c.Pseudo},
	}
	for _, f := range fields {
		if html.UnescapeString(s.Sanitize(f.value)) != html.UnescapeString(f.value) {
			return fmt.Errorf("%w: field %s", ErrUnsafeContent, f.name)
		}
	}
	return nil
}
