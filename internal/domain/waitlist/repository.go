package waitlist

import (
	"context"

	"github.com/apexcricket/academy-api/internal/models"
)

// ListFilter narrows the admin listing. Limit <= 0 disables pagination
// (used by the CSV export, which always covers the whole filtered set).
type ListFilter struct {
	Query  string
	Status string
	Page   int
	Limit  int
}

type Repository interface {
	// -------- Entry (intake) --------
	CreateEntry(
		ctx context.Context,
		entry *models.WaitlistEntry,
	) error

	// -------- Entry (moderation) --------
	GetEntry(
		ctx context.Context,
		id uint,
	) (*models.WaitlistEntry, error)

	ListEntries(
		ctx context.Context,
		filter ListFilter,
	) ([]models.WaitlistEntry, int64, error)

	// TransitionWithAudit persists the status change and the audit row in
	// one transaction; a failed audit insert rolls the status back.
	TransitionWithAudit(
		ctx context.Context,
		entry *models.WaitlistEntry,
		auditLog *models.AuditLog,
	) error

	// -------- Program (interest resolution) --------
	GetProgram(
		ctx context.Context,
		id uint,
	) (*models.Program, error)
}
