package waitlist

import (
	"context"
	"time"

	"github.com/apexcricket/academy-api/internal/audit"
	domain "github.com/apexcricket/academy-api/internal/domain/waitlist"
	"github.com/apexcricket/academy-api/internal/httperr"
	"github.com/apexcricket/academy-api/internal/models"
)

type TransitionStatus struct {
	repo domain.Repository

	now func() time.Time
}

func NewTransitionStatus(repo domain.Repository) *TransitionStatus {
	return &TransitionStatus{
		repo: repo,
		now:  time.Now,
	}
}

// Execute moves one entry along the lifecycle. The domain guard runs
// before any write, and the status update plus its audit row commit
// together or not at all.
func (uc *TransitionStatus) Execute(
	ctx context.Context,
	entryID uint,
	userID *uint,
	to domain.Status,
) (*models.WaitlistEntry, error) {

	if !domain.IsValid(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	entry, err := uc.repo.GetEntry(ctx, entryID)
	if err != nil {
		return nil, httperr.ErrBusiness("entry_not_found")
	}

	before := entry.Status

	if err := domain.Transition(entry, to, uc.now()); err != nil {
		return nil, err
	}

	auditLog := &models.AuditLog{
		UserID:   userID,
		Action:   "update",
		Entity:   "waitlist",
		EntityID: &entry.ID,
		Metadata: audit.StatusChangeMetadata(before, entry.Status),
	}

	if err := uc.repo.TransitionWithAudit(ctx, entry, auditLog); err != nil {
		return nil, err
	}

	return entry, nil
}
