package loadtest

import (
	"errors"
	"fmt"

	"github.com/okian/contacts/internal/domain/model"
)

// ErrVerification is returned when listed contacts do not match created ones.
var ErrVerification = errors.New("verification failed")

// verifyContacts checks that every created id appears exactly once in listed.
// Extra contacts already in the service are ignored.
func verifyContacts(created []string, listed []model.Contact) (int, error) {
	seen := make(map[string]int, len(listed))
	for _, c := range listed {
		seen[c.ID]++
	}

	var missing, duplicated int
	for _, id := range created {
		switch seen[id] {
		case 0:
			missing++
		case 1:
		default:
			duplicated++
		}
	}

	verified := len(created) - missing - duplicated
	if missing > 0 || duplicated > 0 {
		return verified, fmt.Errorf("%w: %d missing, %d duplicated", ErrVerification, missing, duplicated)
	}
	return verified, nil
}
