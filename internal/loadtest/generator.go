package loadtest

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/contacts/internal/domain/model"
)

var (
	firstNames = []string{"John", "Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara", "Dennis"}
	domains    = []string{"email.com", "example.org", "mail.test"}
)

// generateContacts creates n contacts with unique UUID ids.
func generateContacts(n int) []model.Contact {
	contacts := make([]model.Contact, n)
	for i := range contacts {
		contacts[i] = generateContact(i)
	}
	return contacts
}

func generateContact(index int) model.Contact {
	id := uuid.NewString()
	first := firstNames[rand.Intn(len(firstNames))]
	return model.Contact{
		ID:        id,
		Email:     fmt.Sprintf("user%d.%s@%s", index, id[:8], domains[rand.Intn(len(domains))]),
		FirstName: first,
		Pseudo:    fmt.Sprintf("%s_%d", first, index),
	}
}
