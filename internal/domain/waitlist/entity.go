package waitlist

import (
	"time"

	"github.com/apexcricket/academy-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an entry to a new status, stamping the matching
// timestamp. Status is the only field mutated after creation.
func Transition(entry *models.WaitlistEntry, to Status, now time.Time) error {
	if err := CanTransition(Status(entry.Status), to); err != nil {
		return err
	}

	entry.Status = string(to)

	switch to {
	case StatusApproved:
		entry.ApprovedAt = &now
	case StatusContacted:
		entry.ContactedAt = &now
	case StatusRejected:
		entry.RejectedAt = &now
	}

	return nil
}
